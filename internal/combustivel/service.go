package combustivel

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

func (s *Service) Criar(req criarCombustivelRequest) (*Combustivel, error) {
	if _, err := s.Repo.BuscarPorSigla(s.DB, req.Sigla); err == nil {
		return nil, apperror.Conflito("combustivel", req.Sigla, "já existe combustível com essa sigla")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	c := Combustivel{Nome: req.Nome, Sigla: req.Sigla, Descricao: req.Descricao, Ativo: true}
	if req.Ativo != nil {
		c.Ativo = *req.Ativo
	}
	if err := s.Repo.Criar(s.DB, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Service) Listar(params paginacao.Params, f Filtro) ([]Combustivel, paginacao.Pagination, error) {
	var (
		itens []Combustivel
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

func (s *Service) BuscarPorID(id uint) (*Combustivel, error) {
	c, err := s.Repo.BuscarPorID(s.DB, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NaoEncontrado("combustivel", id)
	}
	return c, err
}

func (s *Service) Atualizar(id uint, req atualizarCombustivelRequest) (*Combustivel, error) {
	c, err := s.BuscarPorID(id)
	if err != nil {
		return nil, err
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
	return c, nil
}

func (s *Service) Remover(id uint) error {
	if _, err := s.BuscarPorID(id); err != nil {
		return err
	}
	return s.Repo.Deletar(s.DB, id)
}
