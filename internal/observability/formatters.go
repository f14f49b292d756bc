// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/candidate-screener/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRequirement outputs a human-readable summary of the extracted requirement.
func (p *Printer) PrintRequirement(req *types.JobRequirement) {
	if req == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Title:      %s\n", req.Title))
	sb.WriteString(fmt.Sprintf("Seniority:  %s\n", req.Seniority))
	if req.ExperienceMin > 0 {
		sb.WriteString(fmt.Sprintf("Experience: %d+ years\n", req.ExperienceMin))
	}
	sb.WriteString(fmt.Sprintf("Location:   %s\n", req.Location))
	sb.WriteString(fmt.Sprintf("Contract:   %s\n", req.Contract))
	if req.SalaryMin > 0 || req.SalaryMax > 0 {
		sb.WriteString(fmt.Sprintf("Salary:     %d-%d\n", req.SalaryMin, req.SalaryMax))
	}
	sb.WriteString("\n")

	if len(req.RequiredSkills) > 0 {
		sb.WriteString("Required skills:\n")
		count := min(len(req.RequiredSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", req.RequiredSkills[i]))
		}
		if len(req.RequiredSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(req.RequiredSkills)-maxItemsToShow))
		}
	}

	if len(req.OptionalSkills) > 0 {
		sb.WriteString("Nice-to-haves:\n")
		count := min(len(req.OptionalSkills), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", req.OptionalSkills[i]))
		}
		if len(req.OptionalSkills) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(req.OptionalSkills)-3))
		}
	}

	p.printBox("EXTRACTED REQUIREMENT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRanking outputs the ranked candidates with scores and recommendations.
func (p *Printer) PrintRanking(ranked []types.RankedEvaluation) {
	if len(ranked) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total candidates evaluated: %d\n\n", len(ranked)))

	count := min(len(ranked), maxItemsToShow)
	for i := 0; i < count; i++ {
		eval := ranked[i]
		name := eval.Profile.Name
		if name == types.NameNotFound {
			name = eval.SourceName
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, name))
		sb.WriteString(fmt.Sprintf("    Global: %.2f  (P %.0f / T %.0f / S %.0f)\n",
			eval.GlobalScore, eval.ProfileScore.Score,
			eval.TechnicalScore.Score, eval.SoftSkillScore.Score))
		sb.WriteString(fmt.Sprintf("    %s\n", eval.Recommendation))
		if len(eval.MissingSkills) > 0 {
			missing := strings.Join(eval.MissingSkills, ", ")
			if len(missing) > 40 {
				missing = missing[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Missing: %s\n", missing))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(ranked) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more candidates", len(ranked)-maxItemsToShow))
	}

	p.printBox("RANKED CANDIDATES", sb.String())
}

// PrintReport outputs the aggregate statistics of one evaluation run.
func (p *Printer) PrintReport(report *types.EvaluationReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s\n\n", report.Summary))

	stats := report.Stats
	if stats.TotalCandidates > 0 {
		sb.WriteString(fmt.Sprintf("Candidates:  %d\n", stats.TotalCandidates))
		sb.WriteString(fmt.Sprintf("Mean global: %.2f\n", stats.MeanGlobal))
		sb.WriteString(fmt.Sprintf("Best:        %.2f\n", stats.MaxGlobal))
		sb.WriteString(fmt.Sprintf("Worst:       %.2f\n", stats.MinGlobal))
		sb.WriteString(fmt.Sprintf("Mean tech:   %.2f\n", stats.MeanTechnical))
		sb.WriteString(fmt.Sprintf("Mean soft:   %.2f", stats.MeanSoftSkill))
	}

	p.printBox("EVALUATION REPORT", sb.String())
}
