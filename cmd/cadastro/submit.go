package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"cadastro/internal/console"
	"cadastro/internal/form"
	"cadastro/internal/logging"
)

func newSubmitCmd(a *app) *cobra.Command {
	var (
		values map[string]string
		lookup bool
	)

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Fill the form from flags and send it",
		Example: `  cadastro submit --lookup \
    --set cnpj=12.345.678/0001-90 --set razao_social="Exemplo LTDA" \
    --set plataforma=SUSEP --set categoria=C --set regra_comissao=40641885 \
    --set cep=01310-100 --set numero=1000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.ToWriter(cmd.ErrOrStderr(), a.cfg.Log)

			alerts := console.NewAlerter(cmd.OutOrStdout())
			f := form.NewCadastroForm()
			if err := fill(f, values); err != nil {
				return err
			}
			ctrl := a.newController(f, alerts)

			if lookup {
				ctrl.HandleCEPBlur(cmd.Context())
			}
			if _, ok := ctrl.HandleSubmit(cmd.Context()); !ok {
				return errReported
			}
			return nil
		},
	}

	cmd.Flags().StringToStringVar(&values, "set", nil, "field value as id=value (repeatable)")
	cmd.Flags().BoolVar(&lookup, "lookup", false, "fill the address from the CEP before sending")
	return cmd
}

func fill(f *form.Form, values map[string]string) error {
	ids := make([]string, 0, len(values))
	for id := range values {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		fd, ok := f.Field(id)
		if !ok {
			return fmt.Errorf("%w: %s", form.ErrUnknownField, id)
		}
		if fd.Kind == form.KindCheckbox {
			checked, err := strconv.ParseBool(values[id])
			if err != nil {
				return fmt.Errorf("field %s: %w", id, err)
			}
			if err := f.SetChecked(id, checked); err != nil {
				return err
			}
			continue
		}
		if err := f.Set(id, values[id]); err != nil {
			return err
		}
	}
	return nil
}
