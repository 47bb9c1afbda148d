package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"cadastro/internal/config"
	"cadastro/internal/controller"
	"cadastro/internal/form"
	"cadastro/internal/logging"
	"cadastro/internal/service"
	"cadastro/internal/tui"
)

// errReported means the failure was already shown to the user as an alert.
var errReported = errors.New("failure reported")

type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "cadastro",
		Short: "Partner registration form with CEP address lookup",
		Long: `cadastro fills a partner registration form, completes the address from the
postal code (CEP) and sends the registration to the save endpoint.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.loadConfig()
		},
		RunE: a.runForm,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "", "config file (default: ./cadastro.yaml or ~/.config/cadastro/cadastro.yaml)")
	flags.String("lookup-url", "", "base URL of the ViaCEP compatible lookup service")
	flags.String("api-url", "", "base URL of the registration API")
	_ = a.v.BindPFlag("lookup_url", flags.Lookup("lookup-url"))
	_ = a.v.BindPFlag("api_url", flags.Lookup("api-url"))

	root.AddCommand(
		&cobra.Command{
			Use:   "form",
			Short: "Open the registration form in the terminal",
			Args:  cobra.NoArgs,
			RunE:  a.runForm,
		},
		newCEPCmd(a),
		newSubmitCmd(a),
	)
	return root
}

func (a *app) loadConfig() error {
	config.Setup(a.v, a.cfgFile)
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}

func (a *app) newController(f *form.Form, alerts controller.Alerter) *controller.Controller {
	var lookup service.AddressLookup = service.NewViaCEPClient(a.cfg.LookupURL, a.cfg.HTTPTimeout)
	if a.cfg.CacheTTL > 0 {
		lookup = service.NewCachedLookup(lookup, a.cfg.CacheTTL)
	}
	return controller.New(
		f,
		alerts,
		lookup,
		service.NewRegistrationClient(a.cfg.APIURL, a.cfg.HTTPTimeout),
		service.NewCodeGenerator(nil),
	)
}

func (a *app) runForm(cmd *cobra.Command, args []string) error {
	closeLog, err := logging.ToFile(a.cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	slog.Info("starting form", "lookup_url", a.cfg.LookupURL, "api_url", a.cfg.APIURL)

	alerts := tui.NewChannelAlerter()
	ctrl := a.newController(form.NewCadastroForm(), alerts)
	if err := tui.Run(cmd.Context(), ctrl, alerts); err != nil {
		return fmt.Errorf("run form: %w", err)
	}

	slog.Info("form closed")
	return nil
}
