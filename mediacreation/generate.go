package mediacreation

//go:generate go run github.com/agentic-research/mediacreation/cmd/traitgen generate --config traitgen.yml
