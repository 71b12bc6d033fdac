package config

import (
	"log/slog"
	"time"
)

// RPAConfig cobre os fluxos de planilha do cmd/rpa. O broker é opcional:
// RabbitURI vazio desliga a publicação de eventos.
type RPAConfig struct {
	ReceitaWSURL    string
	ViaCEPURL       string
	ConsultaTimeout time.Duration
	RabbitURI       string
	RabbitQueue     string
	LogLevel        slog.Level
}

func LoadRPAConfig() *RPAConfig {
	return &RPAConfig{
		ReceitaWSURL:    getenv("RECEITAWS_URL", "https://receitaws.com.br"),
		ViaCEPURL:       getenv("VIACEP_URL", "https://viacep.com.br"),
		ConsultaTimeout: parseDuration("CONSULTA_TIMEOUT", 30*time.Second),
		RabbitURI:       getenvAny("", "RABBITMQ_URL", "RABBIT_URI"),
		RabbitQueue:     getenvAny("consultas_log", "RABBITMQ_QUEUE", "RABBIT_QUEUE"),
		LogLevel:        parseLevel(getenv("LOG_LEVEL", "info")),
	}
}
