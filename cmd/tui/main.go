package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jhoicas/Categorias-api/internal/interfaces/tui"
	"github.com/jhoicas/Categorias-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}

	client := tui.NewClient(cfg.Client.APIBaseURL)
	program := tea.NewProgram(tui.NewModel(client), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "cliente de categorías:", err)
		os.Exit(1)
	}
}
