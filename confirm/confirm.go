// Package confirm surfaces the playlist fetch-count question to the user.
package confirm

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mpvlink-cli/mpvlink/log"
	"github.com/mpvlink-cli/mpvlink/util"
)

// Outcome classifies the user's reply to the fetch-count question.
type Outcome int

const (
	// Count keeps only the first Result.Count entries.
	Count Outcome = iota
	// All keeps every entry.
	All
	// Timeout means the user never answered; every entry is kept.
	Timeout
	// Cancel demotes the playlist to its first entry.
	Cancel
)

// Result is the user's decision.
type Result struct {
	Outcome Outcome
	Count   int
}

// Prompter asks how many playlist entries to fetch.
type Prompter interface {
	AskCount(total int) Result
}

// Survey prompts on the controlling terminal with a bounded wait.
type Survey struct {
	Timeout time.Duration
}

// Always keeps everything without asking. Used when confirmation is disabled.
type Always struct{}

// AskCount reports that every entry should be fetched.
func (Always) AskCount(int) Result {
	return Result{Outcome: All}
}

// AskCount surfaces the entry total and waits for an answer up to the
// configured timeout. An unanswerable terminal, an interrupt, or unparsable
// input all cancel down to a single item rather than fetching blindly.
func (s Survey) AskCount(total int) Result {
	message := fmt.Sprintf(
		"Playlist detected with %s. How many items do you want to fetch? (0 for all)",
		util.Quantify(total, "entry", "entries"),
	)

	type answer struct {
		reply string
		err   error
	}
	done := make(chan answer, 1)

	go func() {
		var reply string
		err := survey.AskOne(&survey.Input{Message: message, Default: "0"}, &reply)
		done <- answer{reply: reply, err: err}
	}()

	select {
	case a := <-done:
		if a.err != nil {
			log.Warnf("fetch-count prompt failed: %v, keeping only the first entry", a.err)
			return Result{Outcome: Cancel}
		}
		return ParseReply(a.reply)
	case <-time.After(s.Timeout):
		// The prompt goroutine stays parked on stdin until the process
		// exits; no more terminal input is read after a timeout.
		log.Infof("fetch-count prompt timed out, fetching all %d entries", total)
		return Result{Outcome: Timeout}
	}
}

// ParseReply maps a raw reply onto an outcome. Empty input and explicit zero
// both mean "fetch everything"; anything unparsable cancels.
func ParseReply(reply string) Result {
	reply = strings.TrimSpace(reply)
	if reply == "" {
		return Result{Outcome: All}
	}

	n, err := strconv.Atoi(reply)
	switch {
	case err != nil || n < 0:
		return Result{Outcome: Cancel}
	case n == 0:
		return Result{Outcome: All}
	default:
		return Result{Outcome: Count, Count: n}
	}
}
