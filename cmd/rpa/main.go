package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// cmd/rpa: os fluxos de planilha que antes eram rodados à mão, um
// identificador por vez — ler da planilha, consultar, gravar de volta.
var rootCmd = &cobra.Command{
	Use:           "rpa",
	Short:         "Fluxos de RPA sobre planilhas: consulta de CNPJ, CEP e envio de formulário",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "erro:", err)
		os.Exit(1)
	}
}
