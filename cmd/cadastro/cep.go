package main

import (
	"github.com/spf13/cobra"

	"cadastro/internal/console"
	"cadastro/internal/controller"
	"cadastro/internal/form"
	"cadastro/internal/logging"
)

var addressIDs = []string{
	form.FieldLogradouro,
	form.FieldEndereco,
	form.FieldBairro,
	form.FieldCidade,
	form.FieldEstado,
}

func newCEPCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "cep <cep>",
		Short:   "Look a postal code up and print the address fields it fills",
		Example: "  cadastro cep 01310-100",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.ToWriter(cmd.ErrOrStderr(), a.cfg.Log)

			out := cmd.OutOrStdout()
			alerts := console.NewAlerter(out)
			f := form.NewCadastroForm()
			ctrl := a.newController(f, alerts)

			if err := f.Set(form.FieldCEP, args[0]); err != nil {
				return err
			}
			if !ctrl.HandleCEPBlur(cmd.Context()) {
				alerts.Alert("Erro ao buscar CEP: o CEP deve ter 8 dígitos, recebido " + controller.NormalizeCEP(args[0]))
				return errReported
			}
			if alerts.Failures() > 0 {
				return errReported
			}

			console.PrintFields(out, labels(f), f.Values(), addressIDs)
			return nil
		},
	}
}

func labels(f *form.Form) map[string]string {
	out := make(map[string]string)
	for _, fd := range f.Fields() {
		out[fd.ID] = fd.Label
	}
	return out
}
