package categoria

import (
	"errors"

	"github.com/GestaoGas/api-abastecimento/internal/apperror"
	"github.com/GestaoGas/api-abastecimento/internal/paginacao"
	"github.com/GestaoGas/api-abastecimento/internal/prefeitura"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type Service struct {
	DB             *gorm.DB
	Repo           Repository
	PrefeituraRepo prefeitura.Repository
}

func NewService(db *gorm.DB) *Service {
	return &Service{DB: db, Repo: NewRepository(), PrefeituraRepo: prefeitura.NewRepository()}
}

func (s *Service) Criar(req criarCategoriaRequest) (*CategoriaDTO, error) {
	pref, err := s.PrefeituraRepo.BuscarPorID(s.DB, req.PrefeituraID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NaoEncontrado("prefeitura", req.PrefeituraID)
	} else if err != nil {
		return nil, err
	}

	c := Categoria{
		PrefeituraID:  req.PrefeituraID,
		TipoCategoria: req.TipoCategoria,
		Nome:          req.Nome,
		Descricao:     req.Descricao,
		Ativo:         true,
	}
	if req.Ativo != nil {
		c.Ativo = *req.Ativo
	}
	if err := s.Repo.Criar(s.DB, &c); err != nil {
		return nil, err
	}
	dto := CategoriaDTO{Categoria: c, Prefeitura: prefeitura.Resumo(*pref)}
	return &dto, nil
}

func (s *Service) Listar(params paginacao.Params, f Filtro) ([]CategoriaDTO, paginacao.Pagination, error) {
	var (
		itens []Categoria
		total int64
	)
	g := new(errgroup.Group)
	g.Go(func() error {
		var err error
		itens, err = s.Repo.Listar(s.DB, f, params.Offset(), params.Limit)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.Repo.Contar(s.DB, f)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, paginacao.Pagination{}, err
	}

	dtos := make([]CategoriaDTO, 0, len(itens))
	for _, c := range itens {
		dto := CategoriaDTO{Categoria: c}
		if pref, err := s.PrefeituraRepo.BuscarPorID(s.DB, c.PrefeituraID); err == nil {
			dto.Prefeitura = prefeitura.Resumo(*pref)
		}
		dtos = append(dtos, dto)
	}
	return dtos, params.Montar(total), nil
}

func (s *Service) BuscarPorID(id uint) (*DetalheCategoriaDTO, error) {
	c, err := s.Repo.BuscarPorID(s.DB, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NaoEncontrado("categoria", id)
	} else if err != nil {
		return nil, err
	}

	detalhe := DetalheCategoriaDTO{CategoriaDTO: CategoriaDTO{Categoria: *c}}
	if pref, err := s.PrefeituraRepo.BuscarPorID(s.DB, c.PrefeituraID); err == nil {
		detalhe.Prefeitura = prefeitura.Resumo(*pref)
	}
	if detalhe.TotalVeiculos, err = s.Repo.ContarVeiculos(s.DB, id); err != nil {
		return nil, err
	}
	return &detalhe, nil
}

func (s *Service) Atualizar(id uint, req atualizarCategoriaRequest) (*CategoriaDTO, error) {
	c, err := s.Repo.BuscarPorID(s.DB, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NaoEncontrado("categoria", id)
	} else if err != nil {
		return nil, err
	}

	if req.TipoCategoria != nil {
		c.TipoCategoria = *req.TipoCategoria
	}
	if req.Nome != nil {
		c.Nome = *req.Nome
	}
	if req.Descricao != nil {
		c.Descricao = *req.Descricao
	}
	if req.Ativo != nil {
		c.Ativo = *req.Ativo
	}
	if err := s.Repo.Atualizar(s.DB, c); err != nil {
		return nil, err
	}

	dto := CategoriaDTO{Categoria: *c}
	if pref, err := s.PrefeituraRepo.BuscarPorID(s.DB, c.PrefeituraID); err == nil {
		dto.Prefeitura = prefeitura.Resumo(*pref)
	}
	return &dto, nil
}

func (s *Service) Remover(id uint) error {
	if _, err := s.Repo.BuscarPorID(s.DB, id); errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NaoEncontrado("categoria", id)
	} else if err != nil {
		return err
	}
	return s.Repo.Deletar(s.DB, id)
}
