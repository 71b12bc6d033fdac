package main

import (
	"github.com/spf13/cobra"

	"github.com/Werneck0live/consulta-cnpj/internal/config"
	"github.com/Werneck0live/consulta-cnpj/internal/planilha"
	"github.com/Werneck0live/consulta-cnpj/internal/viacep"
	"github.com/Werneck0live/consulta-cnpj/internal/workflow"
)

var cepArquivo string

var cepCmd = &cobra.Command{
	Use:   "cep",
	Short: "Consulta os CEPs da aba CEPS na ViaCEP e grava os endereços na aba Dados",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg := config.LoadRPAConfig()
		log := config.InitLogger(cfg.LogLevel)

		p, err := planilha.Abrir(cepArquivo)
		if err != nil {
			return err
		}
		defer p.Close()

		flow := &workflow.CEPFlow{
			Sheet:   p,
			Cliente: viacep.NewClient(cfg.ViaCEPURL, cfg.ConsultaTimeout),
			Log:     log,
		}
		_, err = flow.Run(cmd.Context())
		return err
	},
}

func init() {
	cepCmd.Flags().StringVar(&cepArquivo, "arquivo", "CEP.xlsx", "planilha com a aba CEPS")
	rootCmd.AddCommand(cepCmd)
}
