// Package formatter renders read-only planner views for the terminal.
package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/chayilhub/chayil/internal/derive"
	"github.com/chayilhub/chayil/internal/domain"
)

const wheelBarWidth = 20

// FormatSummary renders a dashboard snapshot of the given aggregate.
func FormatSummary(state domain.PlannerState, now time.Time) string {
	var b strings.Builder

	b.WriteString(Header("Chayıl Planner") + "\n")
	if state.UserName != "" {
		b.WriteString(fmt.Sprintf("Bem-vinda, %s.\n", Bold(state.UserName)))
	}
	b.WriteString(Dim("\""+domain.DailyQuote(now)+"\"") + "\n\n")

	b.WriteString(Header("Tarefas") + "\n")
	progress := derive.TaskProgress(state.Tasks)
	b.WriteString(fmt.Sprintf("%s %d%% concluído (%d tarefas)\n",
		progressStyle(progress).Render(progressBar(progress)), progress, len(state.Tasks)))
	for _, t := range derive.ActiveTasks(state.Tasks, 5) {
		b.WriteString("  ○ " + StyleFg.Render(t.Text) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(Header("Hábitos da Semana") + "\n")
	b.WriteString(fmt.Sprintf("%s ações concluídas\n\n",
		StylePeach.Render(fmt.Sprintf("%d", derive.HabitTotal(state.Habits)))))

	if len(state.Wheel) > 0 {
		b.WriteString(Header("Roda da Vida") + "\n")
		for _, sector := range derive.WheelSectors(state.Wheel, wheelBarWidth) {
			bar := strings.Repeat("█", int(sector.Radius))
			b.WriteString(fmt.Sprintf("  %-26s %s %d\n",
				sector.Name, StyleGold.Render(bar), sector.Score))
		}
		b.WriteString("\n")
	}

	b.WriteString(Header("Finanças") + "\n")
	b.WriteString(financeLine("Pessoal", derive.FinanceSummary(state.FinancePersonal)))
	b.WriteString(financeLine("Empresa", derive.FinanceSummary(state.FinanceBusiness)))
	b.WriteString(financeLine("Consolidado",
		derive.ConsolidatedSummary(state.FinancePersonal, state.FinanceBusiness)))

	return b.String()
}

func financeLine(label string, totals derive.FinanceTotals) string {
	balance := StyleGreen.Render(fmt.Sprintf("R$ %.2f", totals.Balance))
	if totals.Balance < 0 {
		balance = StyleRed.Render(fmt.Sprintf("R$ %.2f", totals.Balance))
	}
	return fmt.Sprintf("  %-12s entradas R$ %.2f · saídas R$ %.2f · saldo %s\n",
		label, totals.Income, totals.Expense, balance)
}

func progressBar(progress int) string {
	filled := progress * wheelBarWidth / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", wheelBarWidth-filled)
}

func progressStyle(progress int) lipgloss.Style {
	switch {
	case progress >= 70:
		return StyleGreen
	case progress >= 30:
		return StyleGold
	default:
		return StyleRed
	}
}
