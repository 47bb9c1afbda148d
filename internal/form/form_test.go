package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValues_FormEncodingSemantics(t *testing.T) {
	f := New(
		Field{ID: "a", Name: "nome", Kind: KindText, Default: "first"},
		Field{ID: "b", Name: "nome", Kind: KindText, Default: "second"},
		Field{ID: "aceite", Name: "aceite", Kind: KindCheckbox, Default: "on"},
		Field{ID: "news", Name: "news", Kind: KindCheckbox, Default: "sim", DefaultChecked: true},
		Field{ID: "nameless", Kind: KindText, Default: "x"},
	)

	values := f.Values()

	assert.Equal(t, map[string]string{
		"nome": "second",
		"news": "sim",
	}, values)

	require.NoError(t, f.SetChecked("aceite", true))
	assert.Equal(t, "on", f.Values()["aceite"])
}

func TestSetAndValue(t *testing.T) {
	f := New(Field{ID: "cep", Name: "cep"})

	require.NoError(t, f.Set("cep", "01310-100"))
	v, err := f.Value("cep")
	require.NoError(t, err)
	assert.Equal(t, "01310-100", v)

	err = f.Set("missing", "x")
	require.ErrorIs(t, err, ErrUnknownField)

	_, err = f.Value("missing")
	require.ErrorIs(t, err, ErrUnknownField)
}

func TestReset_RestoresDefaults(t *testing.T) {
	f := New(
		Field{ID: "cidade", Name: "cidade"},
		Field{ID: "uf", Name: "uf", Default: "SP"},
		Field{ID: "ok", Name: "ok", Kind: KindCheckbox, Default: "1"},
	)
	require.NoError(t, f.Set("cidade", "Campinas"))
	require.NoError(t, f.Set("uf", "RJ"))
	require.NoError(t, f.SetChecked("ok", true))

	f.Reset()

	assert.Equal(t, map[string]string{"cidade": "", "uf": "SP"}, f.Values())
}

func TestNewCadastroForm(t *testing.T) {
	f := NewCadastroForm()

	for _, id := range []string{
		FieldCEP, FieldLogradouro, FieldEndereco, FieldBairro,
		FieldCidade, FieldEstado, FieldCategoria, FieldRegraComissao,
	} {
		_, ok := f.Field(id)
		assert.True(t, ok, "missing field %s", id)
	}

	cat, _ := f.Field(FieldCategoria)
	require.Equal(t, KindSelect, cat.Kind)
	require.Len(t, cat.Options, len(Categorias)+1)
	assert.Equal(t, "", cat.Options[0].Value)

	values := f.Values()
	assert.Len(t, values, 21)
	assert.NotContains(t, values, "codigo")
}
