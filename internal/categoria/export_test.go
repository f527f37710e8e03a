package categoria

// CriarCategoriaRequest expõe criarCategoriaRequest para o pacote de teste
// externo categoria_test, que não pode ficar dentro do pacote por importar
// internal/veiculo (ciclo de importação).
type CriarCategoriaRequest = criarCategoriaRequest
