// Package event reads the GitHub Actions webhook payload to decide whether the
// pull request originates from a forked repository.
package event

import (
	"encoding/json"
	"log/slog"
	"os"
)

// payload mirrors the slice of the Actions pull_request event this tool needs:
// the full names of the head and base repositories.
type payload struct {
	PullRequest struct {
		Head struct {
			Repo struct {
				FullName string `json:"full_name"`
			} `json:"repo"`
		} `json:"head"`
		Base struct {
			Repo struct {
				FullName string `json:"full_name"`
			} `json:"repo"`
		} `json:"base"`
	} `json:"pull_request"`
}

// IsForkPR reports whether the event payload at eventPath describes a pull
// request whose head repository differs from its base repository. A missing
// head or base name (e.g. a deleted fork) counts as different.
//
// The check fails open: an empty path, unreadable file or malformed payload is
// treated as not-a-fork, with a warning. Skipping the comment on a legitimate
// PR costs more than attempting a write the API would reject anyway, so the
// ambiguous case always favors posting.
func IsForkPR(eventPath string) bool {
	if eventPath == "" {
		return false
	}

	data, err := os.ReadFile(eventPath)
	if err != nil {
		slog.Warn("could not determine if fork PR", "path", eventPath, "error", err)
		return false
	}

	var ev payload
	if err := json.Unmarshal(data, &ev); err != nil {
		slog.Warn("could not determine if fork PR", "path", eventPath, "error", err)
		return false
	}

	head := ev.PullRequest.Head.Repo.FullName
	base := ev.PullRequest.Base.Repo.FullName
	return head != base
}
