package scoring

import (
	"github.com/jonathan/ats-scorer/internal/types"
)

// goodResume builds a fixture that satisfies every scorer: complete header,
// in-band summary with a metric, two fully dated roles with strong verbs and
// quantified bullets, complete education, grouped skills, projects, and
// certifications.
func goodResume() *types.ResumeDocument {
	return &types.ResumeDocument{
		Header: types.Header{
			Name:     "Jane Smith",
			Title:    "Senior Software Engineer",
			Location: "Seattle, WA",
			Email:    "jane.smith@example.com",
			Phone:    "+1 (555) 123-4567",
			LinkedIn: "https://linkedin.com/in/janesmith",
		},
		Summary: "Senior software engineer with 9 years building distributed systems and cloud infrastructure. " +
			"Led platform teams that cut deployment time 45% and scaled services to handle peak traffic " +
			"across three product lines.",
		Experience: []types.Experience{
			{
				Title:     "Senior Software Engineer",
				Company:   "Acme Corp",
				StartDate: "Jan 2021",
				EndDate:   "Present",
				Location:  "Seattle, WA",
				Bullets: []string{
					"Led migration of 30 services to Kubernetes across three regions, cutting deployment time 45% for every product team",
					"Built a Go event pipeline that processed 40% of all customer traffic with sub-second latency during peak load",
					"Designed a distributed caching layer that reduced database load 60% and removed the primary source of checkout latency",
					"Mentored five engineers on distributed systems design, code review practice, and production incident response",
					"Reduced cloud infrastructure spend $400k annually by right-sizing compute and consolidating storage tiers",
				},
			},
			{
				Title:     "Software Engineer",
				Company:   "Initech",
				StartDate: "Mar 2016",
				EndDate:   "Dec 2020",
				Location:  "Portland, OR",
				Bullets: []string{
					"Developed REST APIs serving high request volumes daily with 99.9% uptime across four product surfaces",
					"Automated release workflows and cut manual deployment steps 70% for the platform organization",
					"Implemented structured logging and tracing that halved the mean time to resolve production incidents",
					"Improved query performance 35% by redesigning indexes on the highest-traffic PostgreSQL tables",
				},
			},
		},
		Education: []types.Education{
			{
				Institution:    "University of Washington",
				Degree:         "B.S.",
				Field:          "Computer Science",
				GraduationDate: "May 2016",
				Location:       "Seattle, WA",
			},
		},
		Certifications: []types.Certification{
			{Name: "AWS Certified Solutions Architect", Issuer: "Amazon Web Services", Date: "2022"},
		},
		Skills: map[string][]string{
			"Languages":      {"Go", "Python", "SQL", "TypeScript"},
			"Infrastructure": {"Kubernetes", "Docker", "AWS", "Terraform", "PostgreSQL"},
			"Tools":          {"Git", "Prometheus", "Grafana", "Kafka"},
		},
		Projects: []types.Project{
			{
				Title: "Terraform Drift Detector",
				Link:  "https://github.com/janesmith/drift-detector",
				Bullets: []string{
					"Built an open source tool that detects infrastructure drift across 200 services nightly",
					"Released weekly scan reports that caught configuration drift before it reached production environments",
				},
			},
		},
	}
}

// emptyResume is the degenerate all-zero document.
func emptyResume() *types.ResumeDocument {
	return &types.ResumeDocument{}
}

// issueIDs extracts the IDs from a slice of issues, in order.
func issueIDs(issues []types.Issue) []string {
	ids := make([]string, 0, len(issues))
	for _, issue := range issues {
		ids = append(ids, issue.ID)
	}
	return ids
}
