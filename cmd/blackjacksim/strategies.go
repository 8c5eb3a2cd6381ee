package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/fadedpez/blackjacksim/pkg/strategies"
)

type StrategiesCmd struct{}

func (s *StrategiesCmd) Run(cli *CLI) error {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("ID", "DESCRIPTION").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			return labelStyle.Padding(0, 1)
		})

	for _, info := range strategies.DefaultRegistry().List() {
		t.Row(info.ID, info.Description)
	}

	fmt.Println(t.Render())
	return nil
}
