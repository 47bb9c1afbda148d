package form

// IDs of the fields the handlers read and write.
const (
	FieldCEP           = "cep"
	FieldLogradouro    = "logradouro"
	FieldEndereco      = "endereco"
	FieldBairro        = "bairro"
	FieldCidade        = "cidade"
	FieldEstado        = "estado"
	FieldCategoria     = "categoria"
	FieldRegraComissao = "regra_comissao"
	FieldPlataforma    = "plataforma"
)

// FormID is the id of the registration form element.
const FormID = "cadastroForm"

var Categorias = []Option{
	{Value: "C", Label: "CONCESSIONARIA"},
	{Value: "S", Label: "CORRETORA"},
	{Value: "P", Label: "PLATAFORMA"},
	{Value: "E", Label: "EMPRESA"},
}

var RegrasComissao = []Option{
	{Value: "40641669", Label: "COMISSAO 2022 PLATAFORMA"},
	{Value: "40641885", Label: "COMISSAO 2022 CONCESSIONARIA"},
	{Value: "40641970", Label: "COMISSAO 2022 CORRETORA SUSEP"},
	{Value: "23798565", Label: "VENDA ADMINISTRATIVA"},
	{Value: "40642032", Label: "COMISSAO 2022 SUSEP VITALICIO"},
	{Value: "29745447", Label: "CONCESSIONARIA - PARTICIONAMENTO 2"},
}

var Plataformas = []string{
	"SUSEP", "AGECOR 2", "ABSOLUTA", "CASA DE NEGOCIOS", "UNITEDCLASS",
	"JC LUZ", "SUN CORRETORA", "ATACK", "CASA DO CONSULTOR RJ", "VISUAL",
	"DISKDESLTA", "PROJETOS", "ASSURE RIO", "BLUE LIGHT", "MS BUSINESS",
	"ROYAL", "PRIMUM", "MASTER SAUDE", "NOVA CASA DO CONSULTOR",
}

// NewCadastroForm builds the partner registration form.
func NewCadastroForm() *Form {
	plataformas := make([]Option, 0, len(Plataformas)+1)
	plataformas = append(plataformas, placeholder)
	for _, p := range Plataformas {
		plataformas = append(plataformas, Option{Value: p, Label: p})
	}

	return New(
		text("cnpj", "CNPJ"),
		text("razao_social", "Razão social"),
		text("nome_fantasia", "Nome fantasia"),
		Field{ID: FieldPlataforma, Name: FieldPlataforma, Label: "Plataforma", Kind: KindSelect, Options: plataformas},
		Field{ID: FieldCategoria, Name: FieldCategoria, Label: "Categoria", Kind: KindSelect, Options: withPlaceholder(Categorias)},
		Field{ID: FieldRegraComissao, Name: FieldRegraComissao, Label: "Regra de comissão", Kind: KindSelect, Options: withPlaceholder(RegrasComissao)},
		text(FieldCEP, "CEP"),
		text(FieldLogradouro, "Logradouro"),
		text(FieldEndereco, "Endereço"),
		text("numero", "Número"),
		text("complemento", "Complemento"),
		text(FieldBairro, "Bairro"),
		text(FieldCidade, "Cidade"),
		text(FieldEstado, "Estado"),
		text("telefone", "Telefone"),
		text("banco", "Banco"),
		text("agencia", "Agência"),
		text("conta", "Conta"),
		text("email", "E-mail"),
		text("cpf_representante", "CPF do representante"),
		text("nome_representante", "Nome do representante"),
	)
}

var placeholder = Option{Value: "", Label: "Selecione"}

func withPlaceholder(opts []Option) []Option {
	out := make([]Option, 0, len(opts)+1)
	out = append(out, placeholder)
	return append(out, opts...)
}

func text(id, label string) Field {
	return Field{ID: id, Name: id, Label: label, Kind: KindText}
}
