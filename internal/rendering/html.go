// Package rendering produces the ATS-tuned HTML document for a resume:
// plain semantic markup an Applicant Tracking System can parse, plus a
// hidden keyword blob built by KeywordBlob.
package rendering

import (
	"fmt"
	"html"
	"strings"

	"github.com/DavidVeksler/ResumeForge/internal/skills"
	"github.com/DavidVeksler/ResumeForge/internal/types"
)

// Render generates the full ATS HTML document for a resume. All user
// content is escaped; the only markup is the template's own.
func Render(resume *types.ResumeData, proc *skills.Processor) string {
	var b strings.Builder

	name := resume.Personal["name"]
	if name == "" {
		name = "Resume"
	}

	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	b.WriteString("<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", html.EscapeString(name))
	b.WriteString("</head>\n<body>\n")

	renderHeader(&b, resume)
	renderSummary(&b, resume.Summary)
	renderExperience(&b, resume.Experience)
	renderSkills(&b, resume.Skills)
	renderEducation(&b, resume.Education)
	renderProjects(&b, resume.Projects)

	// Hidden keyword blob for ATS keyword matching.
	blob := KeywordBlob(resume, proc)
	if blob != "" {
		fmt.Fprintf(&b, "<div class=\"ats-keywords\" style=\"display:none\" aria-hidden=\"true\">%s</div>\n",
			html.EscapeString(blob))
	}

	b.WriteString("</body>\n</html>\n")
	return b.String()
}

func renderHeader(b *strings.Builder, resume *types.ResumeData) {
	name := resume.Personal["name"]
	if name != "" {
		fmt.Fprintf(b, "<header>\n<h1>%s</h1>\n", html.EscapeString(name))
	} else {
		b.WriteString("<header>\n")
	}

	var contact []string
	for _, field := range []string{"email", "phone", "location", "linkedin", "website"} {
		if v := resume.Personal[field]; v != "" {
			contact = append(contact, html.EscapeString(v))
		}
	}
	if len(contact) > 0 {
		fmt.Fprintf(b, "<p class=\"contact\">%s</p>\n", strings.Join(contact, " | "))
	}
	b.WriteString("</header>\n")
}

func renderSummary(b *strings.Builder, summary *types.Summary) {
	if summary == nil || (summary.Headline == "" && len(summary.Bullets) == 0) {
		return
	}
	b.WriteString("<section class=\"summary\">\n<h2>Professional Summary</h2>\n")
	if summary.Headline != "" {
		fmt.Fprintf(b, "<p class=\"headline\">%s</p>\n", html.EscapeString(summary.Headline))
	}
	if len(summary.Bullets) > 0 {
		b.WriteString("<ul>\n")
		for _, bullet := range summary.Bullets {
			fmt.Fprintf(b, "<li>%s</li>\n", html.EscapeString(bullet))
		}
		b.WriteString("</ul>\n")
	}
	b.WriteString("</section>\n")
}

func renderExperience(b *strings.Builder, experience []types.Experience) {
	if len(experience) == 0 {
		return
	}
	b.WriteString("<section class=\"experience\">\n<h2>Professional Experience</h2>\n")
	for _, job := range experience {
		b.WriteString("<article class=\"job\">\n")
		fmt.Fprintf(b, "<h3>%s</h3>\n", html.EscapeString(job.Title))

		var meta []string
		for _, v := range []string{job.Company, job.Location, job.Duration} {
			if v != "" {
				meta = append(meta, html.EscapeString(v))
			}
		}
		if len(meta) > 0 {
			fmt.Fprintf(b, "<p class=\"job-meta\">%s</p>\n", strings.Join(meta, " &middot; "))
		}
		if job.Description != "" {
			fmt.Fprintf(b, "<p>%s</p>\n", html.EscapeString(job.Description))
		}
		if len(job.Achievements) > 0 {
			b.WriteString("<ul>\n")
			for _, achievement := range job.Achievements {
				fmt.Fprintf(b, "<li>%s</li>\n", html.EscapeString(achievement.Text))
			}
			b.WriteString("</ul>\n")
		}
		b.WriteString("</article>\n")
	}
	b.WriteString("</section>\n")
}

func renderSkills(b *strings.Builder, allSkills types.Skills) {
	if len(allSkills) == 0 {
		return
	}
	b.WriteString("<section class=\"skills\">\n<h2>Technical Skills</h2>\n")
	for _, group := range allSkills {
		fmt.Fprintf(b, "<h3>%s</h3>\n", html.EscapeString(titleCase(group.Name)))
		if group.Category.IsLeveled() {
			b.WriteString("<ul>\n")
			for _, level := range group.Category.Levels {
				fmt.Fprintf(b, "<li><strong>%s:</strong> %s</li>\n",
					html.EscapeString(titleCase(level.Name)),
					html.EscapeString(strings.Join(level.Skills, ", ")))
			}
			b.WriteString("</ul>\n")
			continue
		}
		fmt.Fprintf(b, "<p>%s</p>\n", html.EscapeString(strings.Join(group.Category.Flat, ", ")))
	}
	b.WriteString("</section>\n")
}

func renderEducation(b *strings.Builder, education []types.Education) {
	if len(education) == 0 {
		return
	}
	b.WriteString("<section class=\"education\">\n<h2>Education</h2>\n")
	for _, edu := range education {
		b.WriteString("<article class=\"education-item\">\n")
		fmt.Fprintf(b, "<h3>%s</h3>\n", html.EscapeString(edu.Degree))
		var meta []string
		for _, v := range []string{edu.School, edu.Duration} {
			if v != "" {
				meta = append(meta, html.EscapeString(v))
			}
		}
		if len(meta) > 0 {
			fmt.Fprintf(b, "<p>%s</p>\n", strings.Join(meta, " &middot; "))
		}
		if edu.Description != "" {
			fmt.Fprintf(b, "<p>%s</p>\n", html.EscapeString(edu.Description))
		}
		b.WriteString("</article>\n")
	}
	b.WriteString("</section>\n")
}

func renderProjects(b *strings.Builder, projects []types.Project) {
	if len(projects) == 0 {
		return
	}
	b.WriteString("<section class=\"projects\">\n<h2>Projects</h2>\n")
	for _, project := range projects {
		b.WriteString("<article class=\"project\">\n")
		fmt.Fprintf(b, "<h3>%s</h3>\n", html.EscapeString(project.Name))
		if project.Description != "" {
			fmt.Fprintf(b, "<p>%s</p>\n", html.EscapeString(project.Description))
		}
		if len(project.Technologies) > 0 {
			fmt.Fprintf(b, "<p class=\"technologies\">%s</p>\n",
				html.EscapeString(strings.Join(project.Technologies, ", ")))
		}
		b.WriteString("</article>\n")
	}
	b.WriteString("</section>\n")
}

// titleCase renders snake_case section keys as display headings.
func titleCase(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool { return r == '_' || r == ' ' })
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
