package usuario

import (
	"errors"

	"github.com/GestaoGas/api-abastecimento/internal/apperror"
	"github.com/GestaoGas/api-abastecimento/internal/empresa"
	"github.com/GestaoGas/api-abastecimento/internal/paginacao"
	"github.com/GestaoGas/api-abastecimento/internal/prefeitura"
	"github.com/GestaoGas/api-abastecimento/internal/utils"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type Service struct {
	DB             *gorm.DB
	Repo           Repository
	PrefeituraRepo prefeitura.Repository
	EmpresaRepo    empresa.Repository
}

func NewService(db *gorm.DB) *Service {
	return &Service{
		DB:             db,
		Repo:           NewRepository(),
		PrefeituraRepo: prefeitura.NewRepository(),
		EmpresaRepo:    empresa.NewRepository(),
	}
}

// Criar cadastra o usuário em exatamente um contexto (prefeitura ou
// empresa) e guarda somente o hash bcrypt da senha.
func (s *Service) Criar(req criarUsuarioRequest) (*Usuario, error) {
	if (req.PrefeituraID == nil) == (req.EmpresaID == nil) {
		return nil, apperror.Invalido("usuario", nil, "informe prefeituraId ou empresaId, nunca ambos")
	}
	if req.PrefeituraID != nil {
		if _, err := s.PrefeituraRepo.BuscarPorID(s.DB, *req.PrefeituraID); errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NaoEncontrado("prefeitura", *req.PrefeituraID)
		} else if err != nil {
			return nil, err
		}
	}
	if req.EmpresaID != nil {
		if _, err := s.EmpresaRepo.BuscarPorID(s.DB, *req.EmpresaID); errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NaoEncontrado("empresa", *req.EmpresaID)
		} else if err != nil {
			return nil, err
		}
	}
	if _, err := s.Repo.BuscarPorEmailOuCPF(s.DB, req.Email); err == nil {
		return nil, apperror.Conflito("usuario", req.Email, "já existe usuário com esse e-mail")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if _, err := s.Repo.BuscarPorEmailOuCPF(s.DB, req.CPF); err == nil {
		return nil, apperror.Conflito("usuario", req.CPF, "já existe usuário com esse CPF")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := utils.HashSenha(req.Senha)
	if err != nil {
		return nil, err
	}
	u := Usuario{
		Nome:         req.Nome,
		Email:        req.Email,
		CPF:          req.CPF,
		Senha:        hash,
		TipoUsuario:  req.TipoUsuario,
		StatusAcesso: "PENDENTE",
		Ativo:        true,
		PrefeituraID: req.PrefeituraID,
		EmpresaID:    req.EmpresaID,
	}
	if err := s.Repo.Criar(s.DB, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Autenticar valida credenciais e o estado de acesso do usuário.
func (s *Service) Autenticar(login, senha string) (*Usuario, error) {
	u, err := s.Repo.BuscarPorEmailOuCPF(s.DB, login)
	if err != nil {
		return nil, apperror.Proibido("credenciais inválidas")
	}
	if !utils.VerificarSenha(u.Senha, senha) {
		return nil, apperror.Proibido("credenciais inválidas")
	}
	if !u.Ativo || u.StatusAcesso != "LIBERADO" {
		return nil, apperror.Proibido("acesso pendente, bloqueado ou inativo")
	}
	return u, nil
}

func (s *Service) Listar(params paginacao.Params, f Filtro) ([]Usuario, paginacao.Pagination, error) {
	var (
		itens []Usuario
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

func (s *Service) BuscarPorID(id uint) (*Usuario, error) {
	u, err := s.Repo.BuscarPorID(s.DB, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NaoEncontrado("usuario", id)
	}
	return u, err
}

func (s *Service) Atualizar(id uint, req atualizarUsuarioRequest) (*Usuario, error) {
	u, err := s.BuscarPorID(id)
	if err != nil {
		return nil, err
	}
	if req.Nome != nil {
		u.Nome = *req.Nome
	}
	if req.Email != nil {
		u.Email = *req.Email
	}
	if req.TipoUsuario != nil {
		u.TipoUsuario = *req.TipoUsuario
	}
	if req.StatusAcesso != nil {
		u.StatusAcesso = *req.StatusAcesso
	}
	if req.Ativo != nil {
		u.Ativo = *req.Ativo
	}
	if err := s.Repo.Atualizar(s.DB, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Service) Remover(id uint) error {
	if _, err := s.BuscarPorID(id); err != nil {
		return err
	}
	return s.Repo.Deletar(s.DB, id)
}
