package cotaorgao

import (
	"errors"

	"github.com/GestaoGas/api-abastecimento/internal/apperror"
	"github.com/GestaoGas/api-abastecimento/internal/combustivel"
	"github.com/GestaoGas/api-abastecimento/internal/orgao"
	"github.com/GestaoGas/api-abastecimento/internal/paginacao"
	"github.com/GestaoGas/api-abastecimento/internal/processo"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type Service struct {
	DB              *gorm.DB
	Repo            Repository
	ProcessoRepo    processo.Repository
	OrgaoRepo       orgao.Repository
	CombustivelRepo combustivel.Repository
}

func NewService(db *gorm.DB) *Service {
	return &Service{
		DB:              db,
		Repo:            NewRepository(),
		ProcessoRepo:    processo.NewRepository(),
		OrgaoRepo:       orgao.NewRepository(),
		CombustivelRepo: combustivel.NewRepository(),
	}
}

// Criar exige processo, órgão e combustível existentes e recusa cota
// duplicada para a mesma tripla.
func (s *Service) Criar(req criarCotaRequest) (*CotaDTO, error) {
	proc, err := s.ProcessoRepo.BuscarPorID(s.DB, req.ProcessoID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NaoEncontrado("processo", req.ProcessoID)
	} else if err != nil {
		return nil, err
	}
	org, err := s.OrgaoRepo.BuscarPorID(s.DB, req.OrgaoID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NaoEncontrado("orgao", req.OrgaoID)
	} else if err != nil {
		return nil, err
	}
	comb, err := s.CombustivelRepo.BuscarPorID(s.DB, req.CombustivelID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NaoEncontrado("combustivel", req.CombustivelID)
	} else if err != nil {
		return nil, err
	}
	if _, err := s.Repo.BuscarPorChave(s.DB, req.ProcessoID, req.OrgaoID, req.CombustivelID); err == nil {
		return nil, apperror.Conflito("cota", req.OrgaoID, "órgão já possui cota desse combustível neste processo")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	c := CotaOrgao{
		ProcessoID:    req.ProcessoID,
		OrgaoID:       req.OrgaoID,
		CombustivelID: req.CombustivelID,
		Quantidade:    req.Quantidade,
		Ativa:         true,
	}
	if req.Ativa != nil {
		c.Ativa = *req.Ativa
	}
	if err := s.Repo.Criar(s.DB, &c); err != nil {
		return nil, err
	}

	dto := CotaDTO{
		CotaOrgao:   c,
		Processo:    processo.Resumo(*proc),
		Orgao:       orgao.Resumo(*org),
		Combustivel: combustivel.Resumo(*comb),
	}
	return &dto, nil
}

func (s *Service) montarDTO(c CotaOrgao) CotaDTO {
	dto := CotaDTO{CotaOrgao: c}
	if proc, err := s.ProcessoRepo.BuscarPorID(s.DB, c.ProcessoID); err == nil {
		dto.Processo = processo.Resumo(*proc)
	}
	if org, err := s.OrgaoRepo.BuscarPorID(s.DB, c.OrgaoID); err == nil {
		dto.Orgao = orgao.Resumo(*org)
	}
	if comb, err := s.CombustivelRepo.BuscarPorID(s.DB, c.CombustivelID); err == nil {
		dto.Combustivel = combustivel.Resumo(*comb)
	}
	return dto
}

func (s *Service) Listar(params paginacao.Params, f Filtro) ([]CotaDTO, paginacao.Pagination, error) {
	var (
		itens []CotaOrgao
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

	dtos := make([]CotaDTO, 0, len(itens))
	for _, c := range itens {
		dtos = append(dtos, s.montarDTO(c))
	}
	return dtos, params.Montar(total), nil
}

func (s *Service) BuscarPorID(id uint) (*CotaDTO, error) {
	c, err := s.Repo.BuscarPorID(s.DB, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NaoEncontrado("cota", id)
	} else if err != nil {
		return nil, err
	}
	dto := s.montarDTO(*c)
	return &dto, nil
}

func (s *Service) Atualizar(id uint, req atualizarCotaRequest) (*CotaDTO, error) {
	c, err := s.Repo.BuscarPorID(s.DB, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NaoEncontrado("cota", id)
	} else if err != nil {
		return nil, err
	}
	if req.Quantidade != nil {
		c.Quantidade = *req.Quantidade
	}
	if req.Ativa != nil {
		c.Ativa = *req.Ativa
	}
	if err := s.Repo.Atualizar(s.DB, c); err != nil {
		return nil, err
	}
	dto := s.montarDTO(*c)
	return &dto, nil
}

func (s *Service) Remover(id uint) error {
	if _, err := s.Repo.BuscarPorID(s.DB, id); errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NaoEncontrado("cota", id)
	} else if err != nil {
		return err
	}
	return s.Repo.Deletar(s.DB, id)
}
