package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Werneck0live/consulta-cnpj/internal/broker"
	"github.com/Werneck0live/consulta-cnpj/internal/config"
	"github.com/Werneck0live/consulta-cnpj/internal/planilha"
	"github.com/Werneck0live/consulta-cnpj/internal/receitaws"
	"github.com/Werneck0live/consulta-cnpj/internal/workflow"
)

var cnpjArquivo string

var cnpjCmd = &cobra.Command{
	Use:   "cnpj",
	Short: "Consulta os CNPJs da aba CNPJS na ReceitaWS e grava na aba Dados",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg := config.LoadRPAConfig()
		log := config.InitLogger(cfg.LogLevel)

		p, err := planilha.Abrir(cnpjArquivo)
		if err != nil {
			return err
		}
		defer p.Close()

		// broker opcional: sem RABBITMQ_URL o fluxo roda sem eventos
		var pub workflow.Publisher
		if cfg.RabbitURI != "" {
			pb, err := broker.NewPublisher(cfg.RabbitURI, cfg.RabbitQueue)
			if err != nil {
				slog.Warn("rabbitmq_unavailable", "err", err)
			} else {
				pub = pb
				defer pb.Close()
			}
		}

		flow := &workflow.CNPJFlow{
			Sheet:   p,
			Cliente: receitaws.NewClient(cfg.ReceitaWSURL, cfg.ConsultaTimeout),
			Pub:     pub,
			Log:     log,
		}
		_, err = flow.Run(cmd.Context())
		return err
	},
}

func init() {
	cnpjCmd.Flags().StringVar(&cnpjArquivo, "arquivo", "data_cnpj.xlsx", "planilha com a aba CNPJS")
	rootCmd.AddCommand(cnpjCmd)
}
