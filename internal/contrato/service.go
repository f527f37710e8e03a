package contrato

import (
	"errors"
	"strings"
	"time"

	"github.com/GestaoGas/api-abastecimento/internal/apperror"
	"github.com/GestaoGas/api-abastecimento/internal/empresa"
	"github.com/GestaoGas/api-abastecimento/internal/paginacao"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type Service struct {
	DB          *gorm.DB
	Repo        Repository
	EmpresaRepo empresa.Repository
}

func NewService(db *gorm.DB) *Service {
	return &Service{DB: db, Repo: NewRepository(), EmpresaRepo: empresa.NewRepository()}
}

func parseVigencia(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, apperror.Invalido("contrato", nil, "data de vigência inválida, use RFC3339")
	}
	return t, nil
}

// Criar valida o pai, a janela de vigência e a unicidade de contrato
// por empresa. Checagem e inserção rodam na mesma transação; o índice
// único em empresa_id cobre criações duplicadas concorrentes.
func (s *Service) Criar(req criarContratoRequest) (*ContratoDTO, error) {
	emp, err := s.EmpresaRepo.BuscarPorID(s.DB, req.EmpresaID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NaoEncontrado("empresa", req.EmpresaID)
	} else if err != nil {
		return nil, err
	}

	inicio, err := parseVigencia(req.VigenciaInicio)
	if err != nil {
		return nil, err
	}
	fim, err := parseVigencia(req.VigenciaFim)
	if err != nil {
		return nil, err
	}
	if !inicio.Before(fim) {
		return nil, apperror.Invalido("contrato", nil, "vigência inicial deve ser anterior à final")
	}

	c := Contrato{
		EmpresaID:          req.EmpresaID,
		EmpresaContratante: req.EmpresaContratante,
		EmpresaContratada:  req.EmpresaContratada,
		Titulo:             req.Titulo,
		CNPJEmpresa:        req.CNPJEmpresa,
		VigenciaInicio:     inicio,
		VigenciaFim:        fim,
		Ativo:              true,
		Anexos:             req.Anexos,
	}
	if req.Ativo != nil {
		c.Ativo = *req.Ativo
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := s.Repo.BuscarPorEmpresa(tx, req.EmpresaID); err == nil {
			return apperror.Conflito("contrato", req.EmpresaID, "empresa já possui contrato")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return s.Repo.Criar(tx, &c)
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, apperror.Conflito("contrato", req.EmpresaID, "empresa já possui contrato")
	}
	if err != nil {
		return nil, err
	}

	dto := ContratoDTO{Contrato: c, Empresa: empresa.Resumo(*emp)}
	return &dto, nil
}

func (s *Service) Listar(params paginacao.Params, f Filtro) ([]ContratoDTO, paginacao.Pagination, error) {
	var (
		itens []Contrato
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

	dtos := make([]ContratoDTO, 0, len(itens))
	for _, c := range itens {
		dto := ContratoDTO{Contrato: c}
		if emp, err := s.EmpresaRepo.BuscarPorID(s.DB, c.EmpresaID); err == nil {
			dto.Empresa = empresa.Resumo(*emp)
		}
		dtos = append(dtos, dto)
	}
	return dtos, params.Montar(total), nil
}

func (s *Service) BuscarPorID(id uint) (*DetalheContratoDTO, error) {
	c, err := s.Repo.BuscarPorID(s.DB, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NaoEncontrado("contrato", id)
	} else if err != nil {
		return nil, err
	}

	detalhe := DetalheContratoDTO{ContratoDTO: ContratoDTO{Contrato: *c}}
	if emp, err := s.EmpresaRepo.BuscarPorID(s.DB, c.EmpresaID); err == nil {
		detalhe.Empresa = empresa.Resumo(*emp)
	}
	if detalhe.TotalCombustiveis, err = s.Repo.ContarCombustiveis(s.DB, id); err != nil {
		return nil, err
	}
	if detalhe.TotalAditivos, err = s.Repo.ContarAditivos(s.DB, id); err != nil {
		return nil, err
	}
	return &detalhe, nil
}

func (s *Service) Atualizar(id uint, req atualizarContratoRequest) (*ContratoDTO, error) {
	c, err := s.Repo.BuscarPorID(s.DB, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NaoEncontrado("contrato", id)
	} else if err != nil {
		return nil, err
	}

	if req.EmpresaContratante != nil {
		c.EmpresaContratante = *req.EmpresaContratante
	}
	if req.EmpresaContratada != nil {
		c.EmpresaContratada = *req.EmpresaContratada
	}
	if req.Titulo != nil {
		c.Titulo = *req.Titulo
	}
	if req.CNPJEmpresa != nil {
		c.CNPJEmpresa = *req.CNPJEmpresa
	}
	if req.VigenciaInicio != nil {
		inicio, err := parseVigencia(*req.VigenciaInicio)
		if err != nil {
			return nil, err
		}
		c.VigenciaInicio = inicio
	}
	if req.VigenciaFim != nil {
		fim, err := parseVigencia(*req.VigenciaFim)
		if err != nil {
			return nil, err
		}
		c.VigenciaFim = fim
	}
	if !c.VigenciaInicio.Before(c.VigenciaFim) {
		return nil, apperror.Invalido("contrato", id, "vigência inicial deve ser anterior à final")
	}
	if req.Ativo != nil {
		c.Ativo = *req.Ativo
	}
	if req.Anexos != nil {
		c.Anexos = *req.Anexos
	}

	if err := s.Repo.Atualizar(s.DB, c); err != nil {
		return nil, err
	}

	dto := ContratoDTO{Contrato: *c}
	if emp, err := s.EmpresaRepo.BuscarPorID(s.DB, c.EmpresaID); err == nil {
		dto.Empresa = empresa.Resumo(*emp)
	}
	return &dto, nil
}

// Remover recusa a exclusão enquanto houver combustíveis ou aditivos
// vinculados, nomeando as relações que bloqueiam.
func (s *Service) Remover(id uint) error {
	if _, err := s.Repo.BuscarPorID(s.DB, id); errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NaoEncontrado("contrato", id)
	} else if err != nil {
		return err
	}

	combustiveis, err := s.Repo.ContarCombustiveis(s.DB, id)
	if err != nil {
		return err
	}
	aditivos, err := s.Repo.ContarAditivos(s.DB, id)
	if err != nil {
		return err
	}

	var bloqueios []string
	if combustiveis > 0 {
		bloqueios = append(bloqueios, "combustiveis")
	}
	if aditivos > 0 {
		bloqueios = append(bloqueios, "aditivos")
	}
	if len(bloqueios) > 0 {
		return apperror.Invalido("contrato", id,
			"exclusão bloqueada por relações ativas: "+strings.Join(bloqueios, ", "))
	}
	return s.Repo.Deletar(s.DB, id)
}
