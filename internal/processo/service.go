package processo

import (
	"errors"

	"github.com/GestaoGas/api-abastecimento/internal/apperror"
	"github.com/GestaoGas/api-abastecimento/internal/combustivel"
	"github.com/GestaoGas/api-abastecimento/internal/paginacao"
	"github.com/GestaoGas/api-abastecimento/internal/prefeitura"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type Service struct {
	DB              *gorm.DB
	Repo            Repository
	PrefeituraRepo  prefeitura.Repository
	CombustivelRepo combustivel.Repository
}

func NewService(db *gorm.DB) *Service {
	return &Service{
		DB:              db,
		Repo:            NewRepository(),
		PrefeituraRepo:  prefeitura.NewRepository(),
		CombustivelRepo: combustivel.NewRepository(),
	}
}

func (s *Service) Criar(req criarProcessoRequest) (*ProcessoDTO, error) {
	pref, err := s.PrefeituraRepo.BuscarPorID(s.DB, req.PrefeituraID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NaoEncontrado("prefeitura", req.PrefeituraID)
	} else if err != nil {
		return nil, err
	}

	p := Processo{PrefeituraID: req.PrefeituraID, Numero: req.Numero, Objeto: req.Objeto, Ativo: true}
	if req.Ativo != nil {
		p.Ativo = *req.Ativo
	}
	if err := s.Repo.Criar(s.DB, &p); err != nil {
		return nil, err
	}
	dto := ProcessoDTO{Processo: p, Prefeitura: prefeitura.Resumo(*pref)}
	return &dto, nil
}

func (s *Service) Listar(params paginacao.Params, f Filtro) ([]ProcessoDTO, paginacao.Pagination, error) {
	var (
		itens []Processo
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

	dtos := make([]ProcessoDTO, 0, len(itens))
	for _, p := range itens {
		dto := ProcessoDTO{Processo: p}
		if pref, err := s.PrefeituraRepo.BuscarPorID(s.DB, p.PrefeituraID); err == nil {
			dto.Prefeitura = prefeitura.Resumo(*pref)
		}
		dtos = append(dtos, dto)
	}
	return dtos, params.Montar(total), nil
}

func (s *Service) BuscarPorID(id uint) (*ProcessoDTO, error) {
	p, err := s.Repo.BuscarPorID(s.DB, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NaoEncontrado("processo", id)
	} else if err != nil {
		return nil, err
	}
	dto := ProcessoDTO{Processo: *p}
	if pref, err := s.PrefeituraRepo.BuscarPorID(s.DB, p.PrefeituraID); err == nil {
		dto.Prefeitura = prefeitura.Resumo(*pref)
	}
	return &dto, nil
}

func (s *Service) Atualizar(id uint, req atualizarProcessoRequest) (*ProcessoDTO, error) {
	p, err := s.Repo.BuscarPorID(s.DB, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NaoEncontrado("processo", id)
	} else if err != nil {
		return nil, err
	}
	if req.Numero != nil {
		p.Numero = *req.Numero
	}
	if req.Objeto != nil {
		p.Objeto = *req.Objeto
	}
	if req.Ativo != nil {
		p.Ativo = *req.Ativo
	}
	if err := s.Repo.Atualizar(s.DB, p); err != nil {
		return nil, err
	}
	dto := ProcessoDTO{Processo: *p}
	if pref, err := s.PrefeituraRepo.BuscarPorID(s.DB, p.PrefeituraID); err == nil {
		dto.Prefeitura = prefeitura.Resumo(*pref)
	}
	return &dto, nil
}

// Remover recusa a exclusão enquanto houver alocações de combustível.
func (s *Service) Remover(id uint) error {
	if _, err := s.Repo.BuscarPorID(s.DB, id); errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NaoEncontrado("processo", id)
	} else if err != nil {
		return err
	}
	total, err := s.Repo.ContarCombustiveis(s.DB, &id)
	if err != nil {
		return err
	}
	if total > 0 {
		return apperror.Invalido("processo", id, "exclusão bloqueada por relações ativas: combustiveis")
	}
	return s.Repo.Deletar(s.DB, id)
}

// --- alocações de combustível ---

// CriarCombustivel aloca um combustível ao processo. O saldo nasce
// integralmente disponível e nada bloqueado.
func (s *Service) CriarCombustivel(req criarProcessoCombustivelRequest) (*ProcessoCombustivelDTO, error) {
	proc, err := s.Repo.BuscarPorID(s.DB, req.ProcessoID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NaoEncontrado("processo", req.ProcessoID)
	} else if err != nil {
		return nil, err
	}
	comb, err := s.CombustivelRepo.BuscarPorID(s.DB, req.CombustivelID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NaoEncontrado("combustivel", req.CombustivelID)
	} else if err != nil {
		return nil, err
	}
	if _, err := s.Repo.BuscarCombustivelDoProcesso(s.DB, req.ProcessoID, req.CombustivelID); err == nil {
		return nil, apperror.Conflito("processo combustivel", req.CombustivelID,
			"combustível já alocado a este processo")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	pc := ProcessoCombustivel{
		ProcessoID:              req.ProcessoID,
		CombustivelID:           req.CombustivelID,
		QuantidadeLitros:        req.QuantidadeLitros,
		ValorUnitario:           req.ValorUnitario,
		SaldoBloqueadoProcesso:  0,
		SaldoDisponivelProcesso: req.QuantidadeLitros,
	}
	if err := s.Repo.CriarCombustivel(s.DB, &pc); err != nil {
		return nil, err
	}
	dto := ProcessoCombustivelDTO{
		ProcessoCombustivel: pc,
		Processo:            Resumo(*proc),
		Combustivel:         combustivel.Resumo(*comb),
	}
	return &dto, nil
}

func (s *Service) ListarCombustiveis(params paginacao.Params, processoID *uint) ([]ProcessoCombustivelDTO, paginacao.Pagination, error) {
	var (
		itens []ProcessoCombustivel
		total int64
	)
	g := new(errgroup.Group)
	g.Go(func() error {
		var err error
		itens, err = s.Repo.ListarCombustiveis(s.DB, processoID, params.Offset(), params.Limit)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.Repo.ContarCombustiveis(s.DB, processoID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, paginacao.Pagination{}, err
	}

	dtos := make([]ProcessoCombustivelDTO, 0, len(itens))
	for _, pc := range itens {
		dtos = append(dtos, s.montarCombustivelDTO(pc))
	}
	return dtos, params.Montar(total), nil
}

func (s *Service) montarCombustivelDTO(pc ProcessoCombustivel) ProcessoCombustivelDTO {
	dto := ProcessoCombustivelDTO{ProcessoCombustivel: pc}
	if proc, err := s.Repo.BuscarPorID(s.DB, pc.ProcessoID); err == nil {
		dto.Processo = Resumo(*proc)
	}
	if comb, err := s.CombustivelRepo.BuscarPorID(s.DB, pc.CombustivelID); err == nil {
		dto.Combustivel = combustivel.Resumo(*comb)
	}
	return dto
}

func (s *Service) BuscarCombustivel(id uint) (*ProcessoCombustivelDTO, error) {
	pc, err := s.Repo.BuscarCombustivel(s.DB, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NaoEncontrado("processo combustivel", id)
	} else if err != nil {
		return nil, err
	}
	dto := s.montarCombustivelDTO(*pc)
	return &dto, nil
}

func (s *Service) AtualizarCombustivel(id uint, req atualizarProcessoCombustivelRequest) (*ProcessoCombustivelDTO, error) {
	pc, err := s.Repo.BuscarCombustivel(s.DB, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NaoEncontrado("processo combustivel", id)
	} else if err != nil {
		return nil, err
	}

	if req.QuantidadeLitros != nil {
		pc.QuantidadeLitros = *req.QuantidadeLitros
	}
	if req.ValorUnitario != nil {
		pc.ValorUnitario = *req.ValorUnitario
	}
	if req.SaldoBloqueadoProcesso != nil {
		pc.SaldoBloqueadoProcesso = *req.SaldoBloqueadoProcesso
	}
	if req.SaldoDisponivelProcesso != nil {
		pc.SaldoDisponivelProcesso = *req.SaldoDisponivelProcesso
	}
	if pc.SaldoBloqueadoProcesso+pc.SaldoDisponivelProcesso > pc.QuantidadeLitros {
		return nil, apperror.Invalido("processo combustivel", id,
			"saldo bloqueado + disponível excede a quantidade contratada")
	}

	if err := s.Repo.AtualizarCombustivel(s.DB, pc); err != nil {
		return nil, err
	}
	dto := s.montarCombustivelDTO(*pc)
	return &dto, nil
}

func (s *Service) RemoverCombustivel(id uint) error {
	if _, err := s.Repo.BuscarCombustivel(s.DB, id); errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NaoEncontrado("processo combustivel", id)
	} else if err != nil {
		return err
	}
	return s.Repo.DeletarCombustivel(s.DB, id)
}
