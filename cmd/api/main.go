package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/GestaoGas/api-abastecimento/internal/auth"
	"github.com/GestaoGas/api-abastecimento/internal/categoria"
	"github.com/GestaoGas/api-abastecimento/internal/combustivel"
	"github.com/GestaoGas/api-abastecimento/internal/contrato"
	"github.com/GestaoGas/api-abastecimento/internal/cotaorgao"
	"github.com/GestaoGas/api-abastecimento/internal/empresa"
	"github.com/GestaoGas/api-abastecimento/internal/motorista"
	"github.com/GestaoGas/api-abastecimento/internal/orgao"
	"github.com/GestaoGas/api-abastecimento/internal/prefeitura"
	"github.com/GestaoGas/api-abastecimento/internal/processo"
	"github.com/GestaoGas/api-abastecimento/internal/qrcode"
	"github.com/GestaoGas/api-abastecimento/internal/usuario"
	"github.com/GestaoGas/api-abastecimento/internal/utils/db"
	"github.com/GestaoGas/api-abastecimento/internal/veiculo"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("arquivo .env não encontrado, usando variáveis do ambiente")
	}

	conn, err := db.GetDB()
	if err != nil {
		log.Fatal("Erro ao conectar no banco:", err)
	}

	if err := conn.AutoMigrate(
		&prefeitura.Prefeitura{},
		&empresa.Empresa{},
		&contrato.Contrato{},
		&contrato.ContratoCombustivel{},
		&contrato.ContratoAditivo{},
		&categoria.Categoria{},
		&orgao.Orgao{},
		&orgao.ContaFaturamentoOrgao{},
		&combustivel.Combustivel{},
		&processo.Processo{},
		&processo.ProcessoCombustivel{},
		&cotaorgao.CotaOrgao{},
		&usuario.Usuario{},
		&veiculo.Veiculo{},
		&motorista.Motorista{},
		&qrcode.QRCode{},
	); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}

	// Handlers
	prefeituraHandler := prefeitura.NewHandler(conn)
	empresaHandler := empresa.NewHandler(conn)
	contratoHandler := contrato.NewHandler(conn)
	categoriaHandler := categoria.NewHandler(conn)
	orgaoHandler := orgao.NewHandler(conn)
	combustivelHandler := combustivel.NewHandler(conn)
	processoHandler := processo.NewHandler(conn)
	cotaHandler := cotaorgao.NewHandler(conn)
	usuarioHandler := usuario.NewHandler(conn)
	veiculoHandler := veiculo.NewHandler(conn)
	motoristaHandler := motorista.NewHandler(conn)
	qrcodeHandler := qrcode.NewHandler(conn)

	gestao := auth.ExigirPerfil(auth.PerfilSuperAdmin, auth.PerfilAdminPrefeitura)
	fornecimento := auth.ExigirPerfil(auth.PerfilSuperAdmin, auth.PerfilAdminEmpresa, auth.PerfilColaboradorEmpresa)

	r := mux.NewRouter()

	// Rotas públicas
	r.HandleFunc("/login", usuarioHandler.Login).Methods("POST")
	r.HandleFunc("/usuarios", usuarioHandler.Criar).Methods("POST")

	// Rotas autenticadas sem perfil específico
	autenticado := r.NewRoute().Subrouter()
	autenticado.Use(auth.MiddlewareAutenticacao)
	autenticado.HandleFunc("/me", usuarioHandler.Me).Methods("GET")

	// Rotas de gestão municipal
	adm := r.NewRoute().Subrouter()
	adm.Use(auth.MiddlewareAutenticacao, gestao)

	adm.HandleFunc("/prefeituras", prefeituraHandler.Criar).Methods("POST")
	adm.HandleFunc("/prefeituras", prefeituraHandler.Listar).Methods("GET")
	adm.HandleFunc("/prefeituras/{id}", prefeituraHandler.BuscarPorID).Methods("GET")
	adm.HandleFunc("/prefeituras/{id}", prefeituraHandler.Atualizar).Methods("PATCH")
	adm.HandleFunc("/prefeituras/{id}", prefeituraHandler.Remover).Methods("DELETE")

	adm.HandleFunc("/categorias", categoriaHandler.Criar).Methods("POST")
	adm.HandleFunc("/categorias", categoriaHandler.Listar).Methods("GET")
	adm.HandleFunc("/categorias/{id}", categoriaHandler.BuscarPorID).Methods("GET")
	adm.HandleFunc("/categorias/{id}", categoriaHandler.Atualizar).Methods("PATCH")
	adm.HandleFunc("/categorias/{id}", categoriaHandler.Remover).Methods("DELETE")

	adm.HandleFunc("/orgaos", orgaoHandler.Criar).Methods("POST")
	adm.HandleFunc("/orgaos", orgaoHandler.Listar).Methods("GET")
	adm.HandleFunc("/orgaos/{id}", orgaoHandler.BuscarPorID).Methods("GET")
	adm.HandleFunc("/orgaos/{id}", orgaoHandler.Atualizar).Methods("PATCH")
	adm.HandleFunc("/orgaos/{id}", orgaoHandler.Remover).Methods("DELETE")

	adm.HandleFunc("/contas-faturamento", orgaoHandler.CriarConta).Methods("POST")
	adm.HandleFunc("/contas-faturamento", orgaoHandler.ListarContas).Methods("GET")
	adm.HandleFunc("/contas-faturamento/{id}", orgaoHandler.BuscarConta).Methods("GET")
	adm.HandleFunc("/contas-faturamento/{id}", orgaoHandler.AtualizarConta).Methods("PATCH")
	adm.HandleFunc("/contas-faturamento/{id}", orgaoHandler.RemoverConta).Methods("DELETE")

	adm.HandleFunc("/combustiveis", combustivelHandler.Criar).Methods("POST")
	adm.HandleFunc("/combustiveis", combustivelHandler.Listar).Methods("GET")
	adm.HandleFunc("/combustiveis/{id}", combustivelHandler.BuscarPorID).Methods("GET")
	adm.HandleFunc("/combustiveis/{id}", combustivelHandler.Atualizar).Methods("PATCH")
	adm.HandleFunc("/combustiveis/{id}", combustivelHandler.Remover).Methods("DELETE")

	adm.HandleFunc("/processos", processoHandler.Criar).Methods("POST")
	adm.HandleFunc("/processos", processoHandler.Listar).Methods("GET")
	adm.HandleFunc("/processos/{id}", processoHandler.BuscarPorID).Methods("GET")
	adm.HandleFunc("/processos/{id}", processoHandler.Atualizar).Methods("PATCH")
	adm.HandleFunc("/processos/{id}", processoHandler.Remover).Methods("DELETE")

	adm.HandleFunc("/processos-combustiveis", processoHandler.CriarCombustivel).Methods("POST")
	adm.HandleFunc("/processos-combustiveis", processoHandler.ListarCombustiveis).Methods("GET")
	adm.HandleFunc("/processos-combustiveis/{id}", processoHandler.BuscarCombustivel).Methods("GET")
	adm.HandleFunc("/processos-combustiveis/{id}", processoHandler.AtualizarCombustivel).Methods("PATCH")
	adm.HandleFunc("/processos-combustiveis/{id}", processoHandler.RemoverCombustivel).Methods("DELETE")

	adm.HandleFunc("/cotas-orgao", cotaHandler.Criar).Methods("POST")
	adm.HandleFunc("/cotas-orgao", cotaHandler.Listar).Methods("GET")
	adm.HandleFunc("/cotas-orgao/{id}", cotaHandler.BuscarPorID).Methods("GET")
	adm.HandleFunc("/cotas-orgao/{id}", cotaHandler.Atualizar).Methods("PATCH")
	adm.HandleFunc("/cotas-orgao/{id}", cotaHandler.Remover).Methods("DELETE")

	adm.HandleFunc("/usuarios", usuarioHandler.Listar).Methods("GET")
	adm.HandleFunc("/usuarios/{id}", usuarioHandler.BuscarPorID).Methods("GET")
	adm.HandleFunc("/usuarios/{id}", usuarioHandler.Atualizar).Methods("PATCH")
	adm.HandleFunc("/usuarios/{id}", usuarioHandler.Remover).Methods("DELETE")

	adm.HandleFunc("/veiculos", veiculoHandler.Criar).Methods("POST")
	adm.HandleFunc("/veiculos", veiculoHandler.Listar).Methods("GET")
	adm.HandleFunc("/veiculos/{id}", veiculoHandler.BuscarPorID).Methods("GET")
	adm.HandleFunc("/veiculos/{id}", veiculoHandler.Atualizar).Methods("PATCH")
	adm.HandleFunc("/veiculos/{id}", veiculoHandler.Remover).Methods("DELETE")

	adm.HandleFunc("/motoristas", motoristaHandler.Criar).Methods("POST")
	adm.HandleFunc("/motoristas", motoristaHandler.Listar).Methods("GET")
	adm.HandleFunc("/motoristas/{id}", motoristaHandler.BuscarPorID).Methods("GET")
	adm.HandleFunc("/motoristas/{id}", motoristaHandler.Atualizar).Methods("PATCH")
	adm.HandleFunc("/motoristas/{id}", motoristaHandler.Remover).Methods("DELETE")

	adm.HandleFunc("/qrcodes/lote", qrcodeHandler.EmitirLote).Methods("POST")
	adm.HandleFunc("/qrcodes", qrcodeHandler.Listar).Methods("GET")
	adm.HandleFunc("/qrcodes/{codigo}", qrcodeHandler.BuscarPorCodigo).Methods("GET")
	adm.HandleFunc("/qrcodes/{codigo}/revogar", qrcodeHandler.Revogar).Methods("PATCH")

	// Rotas do lado fornecedor
	forn := r.NewRoute().Subrouter()
	forn.Use(auth.MiddlewareAutenticacao, fornecimento)

	forn.HandleFunc("/empresas", empresaHandler.Criar).Methods("POST")
	forn.HandleFunc("/empresas", empresaHandler.Listar).Methods("GET")
	forn.HandleFunc("/empresas/{id}", empresaHandler.BuscarPorID).Methods("GET")
	forn.HandleFunc("/empresas/{id}", empresaHandler.Atualizar).Methods("PATCH")
	forn.HandleFunc("/empresas/{id}", empresaHandler.Remover).Methods("DELETE")

	forn.HandleFunc("/contratos", contratoHandler.Criar).Methods("POST")
	forn.HandleFunc("/contratos", contratoHandler.Listar).Methods("GET")
	forn.HandleFunc("/contratos/{id}", contratoHandler.BuscarPorID).Methods("GET")
	forn.HandleFunc("/contratos/{id}", contratoHandler.Atualizar).Methods("PATCH")
	forn.HandleFunc("/contratos/{id}", contratoHandler.Remover).Methods("DELETE")

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	fmt.Println("Servidor rodando em http://localhost:8080")
	log.Fatal(http.ListenAndServe(":8080", c.Handler(r)))
}
