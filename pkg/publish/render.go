package publish

import (
	"fmt"
	"strings"
	"time"

	"github.com/xrsl/applykit/pkg/agents"
)

// Artifact file names, written in this order.
const (
	summaryFile = "role_summary.md"
	emailFile   = "intro_email.md"
	resumeFile  = "resume.txt"
	readmeFile  = "README.md"
)

func renderSummary(company string, summary *agents.JobSummary, now time.Time) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s - Role Summary\n\n", company)
	sb.WriteString("## Summary\n")
	sb.WriteString(summary.Summary)
	sb.WriteString("\n\n## Key Requirements\n")
	for _, req := range summary.KeyRequirements {
		fmt.Fprintf(&sb, "- %s\n", req)
	}
	sb.WriteString("\n## Company Context\n")
	sb.WriteString(summary.CompanyContext)
	sb.WriteString("\n\n---\n")
	fmt.Fprintf(&sb, "*Generated on %s*\n", now.Format("2006-01-02 15:04:05"))
	return sb.String()
}

func renderEmail(company string, draft *agents.EmailDraft, now time.Time) string {
	var sb strings.Builder
	sb.WriteString("# Introduction Email\n\n")
	fmt.Fprintf(&sb, "**To:** %s Hiring Team  \n", company)
	fmt.Fprintf(&sb, "**Subject:** %s\n\n", draft.Subject)
	sb.WriteString("---\n\n")
	sb.WriteString(draft.EmailBody)
	sb.WriteString("\n\n---\n")
	fmt.Fprintf(&sb, "*Confidence Score: %.0f%%*  \n", draft.ConfidenceScore*100)
	fmt.Fprintf(&sb, "*Generated on %s*\n", now.Format("2006-01-02 15:04:05"))
	return sb.String()
}

func renderReadme(company string, now time.Time) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s Application\n\n", company)
	fmt.Fprintf(&sb, "This folder contains my application materials for %s.\n\n", company)
	sb.WriteString("## Contents\n")
	sb.WriteString("- **role_summary.md** - AI-analyzed summary of the job description\n")
	sb.WriteString("- **intro_email.md** - Personalized introduction email\n")
	sb.WriteString("- **resume.txt** - My resume\n\n")
	sb.WriteString("## Application Details\n")
	fmt.Fprintf(&sb, "- **Company:** %s\n", company)
	fmt.Fprintf(&sb, "- **Applied on:** %s\n", now.Format("2006-01-02"))
	fmt.Fprintf(&sb, "- **Applied at:** %s\n", now.Format("15:04:05"))
	sb.WriteString("- **Status:** Pending\n")
	return sb.String()
}

func commitMessage(company string) string {
	return fmt.Sprintf(`Add application for %s

- Job description summary
- Personalized introduction email
- Resume
- Application folder README`, company)
}

func prBody(company string, files []string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "## Job Application for %s\n\n", company)
	fmt.Fprintf(&sb, "This PR contains application materials for the position at %s.\n\n", company)
	sb.WriteString("### Files Included\n")
	for _, f := range files {
		fmt.Fprintf(&sb, "- `%s`\n", f)
	}
	sb.WriteString("\n---\n*Review the materials and merge to track this application.*\n")
	return sb.String()
}
