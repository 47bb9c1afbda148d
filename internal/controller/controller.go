// Package controller wires the registration form to its two remote
// collaborators: the postal-code lookup and the registration save endpoint.
package controller

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"cadastro/internal/form"
	"cadastro/internal/model"
	"cadastro/internal/service"
)

const (
	lookupFailurePrefix = "Erro ao buscar CEP: "
	saveFailurePrefix   = "Erro ao salvar: "
	saveSuccessFormat   = "Cadastro realizado com sucesso!\nCódigo gerado: %s"
)

// Alerter shows a message to the user and returns once it has been handed
// over. Implementations decide how blocking the presentation is.
type Alerter interface {
	Alert(message string)
}

// AlertFunc adapts a function to Alerter.
type AlertFunc func(message string)

func (f AlertFunc) Alert(message string) { f(message) }

type Registrar interface {
	Save(ctx context.Context, reg model.Registration) error
}

type CodeSource interface {
	Compose(category, rule string) string
}

// Controller holds the injected form and collaborators. Its two handlers
// share nothing but the form.
type Controller struct {
	form      *form.Form
	alerts    Alerter
	lookup    service.AddressLookup
	registrar Registrar
	codes     CodeSource
}

func New(f *form.Form, alerts Alerter, lookup service.AddressLookup, registrar Registrar, codes CodeSource) *Controller {
	return &Controller{
		form:      f,
		alerts:    alerts,
		lookup:    lookup,
		registrar: registrar,
		codes:     codes,
	}
}

func (c *Controller) Form() *form.Form {
	return c.form
}

// NormalizeCEP strips every non-digit character.
func NormalizeCEP(raw string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, raw)
}

// HandleCEPBlur runs when the postal-code field loses focus. It reports
// whether a lookup was attempted.
func (c *Controller) HandleCEPBlur(ctx context.Context) bool {
	raw, err := c.form.Value(form.FieldCEP)
	if err != nil {
		slog.Error("read cep field", "error", err)
		return false
	}

	cep := NormalizeCEP(raw)
	if len(cep) != 8 {
		return false
	}

	c.fillAddress(ctx, cep)
	return true
}

func (c *Controller) fillAddress(ctx context.Context, cep string) {
	addr, err := c.lookup.Lookup(ctx, cep)
	if err != nil {
		slog.Warn("cep lookup failed", "cep", cep, "error", err)
		c.alerts.Alert(lookupFailurePrefix + err.Error())
		return
	}

	writes := []struct{ id, value string }{
		{form.FieldLogradouro, addr.Logradouro},
		{form.FieldEndereco, addr.Logradouro},
		{form.FieldBairro, addr.Bairro},
		{form.FieldCidade, addr.Localidade},
		{form.FieldEstado, addr.UF},
	}
	for _, w := range writes {
		if err := c.form.Set(w.id, w.value); err != nil {
			c.alerts.Alert(lookupFailurePrefix + err.Error())
			return
		}
	}

	slog.Info("address filled", "cep", cep, "cidade", addr.Localidade, "uf", addr.UF)
}

// HandleSubmit collects the form, attaches a freshly generated code and
// posts it. It returns the generated code and whether the save succeeded.
// Every call draws a new code, there is no duplicate-submission guard.
func (c *Controller) HandleSubmit(ctx context.Context) (string, bool) {
	values := c.form.Values()

	category, err := c.form.Value(form.FieldCategoria)
	if err != nil {
		c.alerts.Alert(saveFailurePrefix + err.Error())
		return "", false
	}
	rule, err := c.form.Value(form.FieldRegraComissao)
	if err != nil {
		c.alerts.Alert(saveFailurePrefix + err.Error())
		return "", false
	}

	codigo := c.codes.Compose(category, rule)

	reg := make(model.Registration, len(values)+1)
	for k, v := range values {
		reg[k] = v
	}
	reg["codigo"] = codigo

	if err := c.registrar.Save(ctx, reg); err != nil {
		slog.Warn("registration failed", "codigo", codigo, "error", err)
		c.alerts.Alert(saveFailurePrefix + err.Error())
		return codigo, false
	}

	slog.Info("registration saved", "codigo", codigo)
	c.alerts.Alert(fmt.Sprintf(saveSuccessFormat, codigo))
	c.form.Reset()
	return codigo, true
}
