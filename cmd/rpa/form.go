package main

import (
	"context"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/spf13/cobra"

	"github.com/Werneck0live/consulta-cnpj/internal/config"
	"github.com/Werneck0live/consulta-cnpj/internal/form"
	"github.com/Werneck0live/consulta-cnpj/internal/planilha"
	"github.com/Werneck0live/consulta-cnpj/internal/workflow"
)

var (
	formArquivo  string
	formURL      string
	formSubmit   string
	formHeadless bool
)

// mapeamento padrão: colunas da aba Contatos -> names dos inputs do
// formulário de pesquisa (names numéricos gerados pelo SurveyMonkey)
var formCampos = []form.Campo{
	{Coluna: "Nome", Seletor: "166517069"},
	{Coluna: "Telefone", Seletor: "166517070"},
	{Coluna: "Email", Seletor: "166517072"},
	{Coluna: "Sobre", Seletor: "166517073"},
}

var formCmd = &cobra.Command{
	Use:   "form",
	Short: "Envia cada linha da aba Contatos para o formulário web via navegador",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg := config.LoadRPAConfig()
		log := config.InitLogger(cfg.LogLevel)

		p, err := planilha.Abrir(formArquivo)
		if err != nil {
			return err
		}
		defer p.Close()

		u, err := launcher.New().Headless(formHeadless).Launch()
		if err != nil {
			return err
		}
		browser := rod.New().ControlURL(u)
		if err := browser.Connect(); err != nil {
			return err
		}
		defer browser.Close()

		flow := &workflow.FormFlow{
			Sheet: p,
			Preencher: func(ctx context.Context, reg form.Registro) error {
				// cada registro abre uma aba nova: o envio navega para a
				// página de agradecimento e invalida a anterior
				page, err := browser.Page(proto.TargetCreateTarget{URL: formURL})
				if err != nil {
					return err
				}
				defer page.Close()
				page = page.Context(ctx)
				if err := page.WaitLoad(); err != nil {
					return err
				}
				return form.Preencher(page, formCampos, reg, formSubmit)
			},
			Log: log,
		}
		_, err = flow.Run(cmd.Context())
		return err
	},
}

func init() {
	formCmd.Flags().StringVar(&formArquivo, "arquivo", "dados.xlsx", "planilha com a aba Contatos")
	formCmd.Flags().StringVar(&formURL, "url", "https://pt.surveymonkey.com/r/VH5Z8WB", "endereço do formulário")
	formCmd.Flags().StringVar(&formSubmit, "submit", `button[type="submit"]`, "seletor CSS do botão de envio")
	formCmd.Flags().BoolVar(&formHeadless, "headless", true, "roda o navegador sem janela")
	rootCmd.AddCommand(formCmd)
}
