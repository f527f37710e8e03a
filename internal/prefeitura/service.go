package prefeitura

import (
	"errors"

	"github.com/GestaoGas/api-abastecimento/internal/apperror"
	"github.com/GestaoGas/api-abastecimento/internal/paginacao"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// Service concentra as regras de negócio de prefeituras; o client de
// persistência chega por injeção, nunca por global.
type Service struct {
	DB   *gorm.DB
	Repo Repository
}

func NewService(db *gorm.DB) *Service {
	return &Service{DB: db, Repo: NewRepository()}
}

func (s *Service) Criar(req criarPrefeituraRequest) (*Prefeitura, error) {
	if _, err := s.Repo.BuscarPorCNPJ(s.DB, req.CNPJ); err == nil {
		return nil, apperror.Conflito("prefeitura", req.CNPJ, "já existe prefeitura com esse CNPJ")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	p := Prefeitura{Nome: req.Nome, CNPJ: req.CNPJ}
	if err := s.Repo.Criar(s.DB, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Listar executa página e contagem em paralelo e fecha o envelope.
func (s *Service) Listar(params paginacao.Params) ([]Prefeitura, paginacao.Pagination, error) {
	var (
		itens []Prefeitura
		total int64
	)
	g := new(errgroup.Group)
	g.Go(func() error {
		var err error
		itens, err = s.Repo.Listar(s.DB, params.Offset(), params.Limit)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.Repo.Contar(s.DB)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, paginacao.Pagination{}, err
	}
	return itens, params.Montar(total), nil
}

func (s *Service) BuscarPorID(id uint) (*Prefeitura, error) {
	p, err := s.Repo.BuscarPorID(s.DB, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NaoEncontrado("prefeitura", id)
	}
	return p, err
}

func (s *Service) Atualizar(id uint, req atualizarPrefeituraRequest) (*Prefeitura, error) {
	p, err := s.BuscarPorID(id)
	if err != nil {
		return nil, err
	}
	if req.Nome != nil {
		p.Nome = *req.Nome
	}
	if req.CNPJ != nil {
		p.CNPJ = *req.CNPJ
	}
	if err := s.Repo.Atualizar(s.DB, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Remover(id uint) error {
	if _, err := s.BuscarPorID(id); err != nil {
		return err
	}
	return s.Repo.Deletar(s.DB, id)
}
