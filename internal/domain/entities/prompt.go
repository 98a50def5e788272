package entities

import (
	"fmt"
	"strings"
)

// PromptMode selects how much of the metadata a prompt carries and what it asks for.
type PromptMode string

const (
	ModeShortSummary PromptMode = "short"
	ModeFullReadme   PromptMode = "full"

	shortSummaryTopFiles = 5
	fullReadmeTopFiles   = 10
)

const shortSummaryPrompt = `Write a concise (2-4 sentences) friendly README project summary for a repository with:
- name: %s
- short description (if any): %s
- main languages: %s
- notable files: %s
Keep it practical and include one sentence about how to get started.`

const fullReadmePrompt = `You are a helpful assistant. Write a complete, factual README for the repository.

Repository Name: %s
Repository URL: %s
Short Description: %s
Languages: %s
Top Files: %s
Dependencies: %s
Tests Included: %s
License: %s

Include sections:
- Project Overview
- Installation Instructions (use detected dependencies)
- Usage Guide (include example commands based on main files)
- Project Structure (list top files/directories)
- Testing Instructions
- License Information

Use ONLY the information provided above. Do not fabricate commands, repository names, URLs or features.
Make the instructions accurate and specific to the repository. Avoid generic placeholders like 'repo' or 'python -m <package>'.
Use proper Markdown formatting.`

// ParsePromptMode converts a command-line value into a PromptMode.
func ParsePromptMode(raw string) (PromptMode, error) {
	switch PromptMode(strings.ToLower(strings.TrimSpace(raw))) {
	case ModeShortSummary:
		return ModeShortSummary, nil
	case ModeFullReadme, "":
		return ModeFullReadme, nil
	default:
		return "", fmt.Errorf("unknown prompt mode %q (expected %q or %q)", raw, ModeShortSummary, ModeFullReadme)
	}
}

// ComposePrompt renders the metadata into a generator prompt. It is a pure
// function: identical inputs always produce byte-identical prompts.
func ComposePrompt(metadata RepoMetadata, cfg RunConfiguration, mode PromptMode) string {
	if mode == ModeShortSummary {
		return fmt.Sprintf(shortSummaryPrompt,
			metadata.Name,
			orDefault(metadata.Description, "N/A"),
			orDefault(strings.Join(metadata.LanguageNames(), ", "), "unknown"),
			orDefault(strings.Join(headOf(metadata.TopFiles, shortSummaryTopFiles), ", "), "None"),
		)
	}

	tests := "No"
	if metadata.HasTests {
		tests = "Yes"
	}

	return fmt.Sprintf(fullReadmePrompt,
		metadata.Name,
		orDefault(cfg.RepoURL(), "N/A"),
		orDefault(metadata.Description, "No description provided"),
		orDefault(strings.Join(metadata.LanguageNames(), ", "), "unknown"),
		orDefault(strings.Join(headOf(metadata.TopFiles, fullReadmeTopFiles), ", "), "None"),
		orDefault(metadata.FormatDependencies(), "None detected"),
		tests,
		orDefault(metadata.License, unspecifiedLicense),
	)
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func headOf(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
