package empresa

import (
	"errors"

	"github.com/GestaoGas/api-abastecimento/internal/apperror"
	"github.com/GestaoGas/api-abastecimento/internal/paginacao"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type Service struct {
	DB   *gorm.DB
	Repo Repository
}

func NewService(db *gorm.DB) *Service {
	return &Service{DB: db, Repo: NewRepository()}
}

func (s *Service) Criar(req criarEmpresaRequest) (*Empresa, error) {
	if _, err := s.Repo.BuscarPorCNPJ(s.DB, req.CNPJ); err == nil {
		return nil, apperror.Conflito("empresa", req.CNPJ, "já existe empresa com esse CNPJ")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	e := Empresa{Nome: req.Nome, CNPJ: req.CNPJ, Ativo: true}
	if req.Ativo != nil {
		e.Ativo = *req.Ativo
	}
	if err := s.Repo.Criar(s.DB, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *Service) Listar(params paginacao.Params, f Filtro) ([]Empresa, paginacao.Pagination, error) {
	var (
		itens []Empresa
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
	return itens, params.Montar(total), nil
}

func (s *Service) BuscarPorID(id uint) (*Empresa, error) {
	e, err := s.Repo.BuscarPorID(s.DB, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NaoEncontrado("empresa", id)
	}
	return e, err
}

func (s *Service) Atualizar(id uint, req atualizarEmpresaRequest) (*Empresa, error) {
	e, err := s.BuscarPorID(id)
	if err != nil {
		return nil, err
	}
	if req.Nome != nil {
		e.Nome = *req.Nome
	}
	if req.CNPJ != nil {
		e.CNPJ = *req.CNPJ
	}
	if req.Ativo != nil {
		e.Ativo = *req.Ativo
	}
	if err := s.Repo.Atualizar(s.DB, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *Service) Remover(id uint) error {
	if _, err := s.BuscarPorID(id); err != nil {
		return err
	}
	return s.Repo.Deletar(s.DB, id)
}
