package orgao

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

func (s *Service) Criar(req criarOrgaoRequest) (*OrgaoDTO, error) {
	pref, err := s.PrefeituraRepo.BuscarPorID(s.DB, req.PrefeituraID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NaoEncontrado("prefeitura", req.PrefeituraID)
	} else if err != nil {
		return nil, err
	}

	o := Orgao{PrefeituraID: req.PrefeituraID, Nome: req.Nome, Sigla: req.Sigla, Ativo: true}
	if req.Ativo != nil {
		o.Ativo = *req.Ativo
	}
	if err := s.Repo.Criar(s.DB, &o); err != nil {
		return nil, err
	}
	dto := OrgaoDTO{Orgao: o, Prefeitura: prefeitura.Resumo(*pref)}
	return &dto, nil
}

func (s *Service) Listar(params paginacao.Params, f Filtro) ([]OrgaoDTO, paginacao.Pagination, error) {
	var (
		itens []Orgao
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

	dtos := make([]OrgaoDTO, 0, len(itens))
	for _, o := range itens {
		dto := OrgaoDTO{Orgao: o}
		if pref, err := s.PrefeituraRepo.BuscarPorID(s.DB, o.PrefeituraID); err == nil {
			dto.Prefeitura = prefeitura.Resumo(*pref)
		}
		dtos = append(dtos, dto)
	}
	return dtos, params.Montar(total), nil
}

func (s *Service) BuscarPorID(id uint) (*OrgaoDTO, error) {
	o, err := s.Repo.BuscarPorID(s.DB, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NaoEncontrado("orgao", id)
	} else if err != nil {
		return nil, err
	}
	dto := OrgaoDTO{Orgao: *o}
	if pref, err := s.PrefeituraRepo.BuscarPorID(s.DB, o.PrefeituraID); err == nil {
		dto.Prefeitura = prefeitura.Resumo(*pref)
	}
	return &dto, nil
}

func (s *Service) Atualizar(id uint, req atualizarOrgaoRequest) (*OrgaoDTO, error) {
	o, err := s.Repo.BuscarPorID(s.DB, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NaoEncontrado("orgao", id)
	} else if err != nil {
		return nil, err
	}
	if req.Nome != nil {
		o.Nome = *req.Nome
	}
	if req.Sigla != nil {
		o.Sigla = *req.Sigla
	}
	if req.Ativo != nil {
		o.Ativo = *req.Ativo
	}
	if err := s.Repo.Atualizar(s.DB, o); err != nil {
		return nil, err
	}
	dto := OrgaoDTO{Orgao: *o}
	if pref, err := s.PrefeituraRepo.BuscarPorID(s.DB, o.PrefeituraID); err == nil {
		dto.Prefeitura = prefeitura.Resumo(*pref)
	}
	return &dto, nil
}

func (s *Service) Remover(id uint) error {
	if _, err := s.Repo.BuscarPorID(s.DB, id); errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NaoEncontrado("orgao", id)
	} else if err != nil {
		return err
	}
	return s.Repo.Deletar(s.DB, id)
}

// --- contas de faturamento ---

func (s *Service) CriarConta(req criarContaRequest) (*ContaDTO, error) {
	if _, err := s.PrefeituraRepo.BuscarPorID(s.DB, req.PrefeituraID); errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NaoEncontrado("prefeitura", req.PrefeituraID)
	} else if err != nil {
		return nil, err
	}
	org, err := s.Repo.BuscarPorID(s.DB, req.OrgaoID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NaoEncontrado("orgao", req.OrgaoID)
	} else if err != nil {
		return nil, err
	}

	c := ContaFaturamentoOrgao{
		PrefeituraID: req.PrefeituraID,
		OrgaoID:      req.OrgaoID,
		Nome:         req.Nome,
		Descricao:    req.Descricao,
	}
	if err := s.Repo.CriarConta(s.DB, &c); err != nil {
		return nil, err
	}
	dto := ContaDTO{ContaFaturamentoOrgao: c, Orgao: Resumo(*org)}
	return &dto, nil
}

func (s *Service) ListarContas(params paginacao.Params, orgaoID *uint) ([]ContaDTO, paginacao.Pagination, error) {
	var (
		itens []ContaFaturamentoOrgao
		total int64
	)
	g := new(errgroup.Group)
	g.Go(func() error {
		var err error
		itens, err = s.Repo.ListarContas(s.DB, orgaoID, params.Offset(), params.Limit)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.Repo.ContarContas(s.DB, orgaoID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, paginacao.Pagination{}, err
	}

	dtos := make([]ContaDTO, 0, len(itens))
	for _, c := range itens {
		dto := ContaDTO{ContaFaturamentoOrgao: c}
		if org, err := s.Repo.BuscarPorID(s.DB, c.OrgaoID); err == nil {
			dto.Orgao = Resumo(*org)
		}
		dtos = append(dtos, dto)
	}
	return dtos, params.Montar(total), nil
}

func (s *Service) BuscarConta(id uint) (*ContaDTO, error) {
	c, err := s.Repo.BuscarConta(s.DB, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NaoEncontrado("conta de faturamento", id)
	} else if err != nil {
		return nil, err
	}
	dto := ContaDTO{ContaFaturamentoOrgao: *c}
	if org, err := s.Repo.BuscarPorID(s.DB, c.OrgaoID); err == nil {
		dto.Orgao = Resumo(*org)
	}
	return &dto, nil
}

func (s *Service) AtualizarConta(id uint, req atualizarContaRequest) (*ContaDTO, error) {
	c, err := s.Repo.BuscarConta(s.DB, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NaoEncontrado("conta de faturamento", id)
	} else if err != nil {
		return nil, err
	}
	if req.Nome != nil {
		c.Nome = *req.Nome
	}
	if req.Descricao != nil {
		c.Descricao = *req.Descricao
	}
	if err := s.Repo.AtualizarConta(s.DB, c); err != nil {
		return nil, err
	}
	dto := ContaDTO{ContaFaturamentoOrgao: *c}
	if org, err := s.Repo.BuscarPorID(s.DB, c.OrgaoID); err == nil {
		dto.Orgao = Resumo(*org)
	}
	return &dto, nil
}

func (s *Service) RemoverConta(id uint) error {
	if _, err := s.Repo.BuscarConta(s.DB, id); errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NaoEncontrado("conta de faturamento", id)
	} else if err != nil {
		return err
	}
	return s.Repo.DeletarConta(s.DB, id)
}
