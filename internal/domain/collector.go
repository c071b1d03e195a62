package domain

import (
	"fmt"
	"strings"
)

// ParticipantDraft is one pending team member's details, held in memory until
// the whole batch is committed.
type ParticipantDraft struct {
	Name        string `json:"name"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

func (d ParticipantDraft) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("%w: participant name is required", ErrValidation)
	}
	return nil
}

// Collector walks participant entry one index at a time until the target
// count is reached. Back and forward navigation keeps entered data; nothing
// is submitted anywhere until the batch is complete.
type Collector struct {
	target   int
	index    int
	entries  []ParticipantDraft
	complete bool
}

func NewCollector(target int) (*Collector, error) {
	if target < 1 {
		return nil, fmt.Errorf("%w: participant count must be at least 1", ErrValidation)
	}
	return &Collector{
		target:  target,
		entries: make([]ParticipantDraft, target),
	}, nil
}

func (c *Collector) Target() int { return c.target }

// Index is the zero-based position currently being collected.
func (c *Collector) Index() int { return c.index }

func (c *Collector) Done() bool { return c.complete }

// Current returns the draft at the current index, so a revisited entry shows
// previously entered data.
func (c *Collector) Current() ParticipantDraft {
	return c.entries[c.index]
}

// Next stores the draft at the current index and advances. Completing the
// last index marks the collector done.
func (c *Collector) Next(d ParticipantDraft) error {
	if c.complete {
		return fmt.Errorf("%w: all participants already collected", ErrFlowState)
	}
	if err := d.Validate(); err != nil {
		return err
	}

	c.entries[c.index] = d
	if c.index == c.target-1 {
		c.complete = true
		return nil
	}
	c.index++
	return nil
}

// Back steps to the previous index, keeping what was entered there. Backing
// out of the completed state reopens the last entry in place, since Next
// never advances past the final index.
func (c *Collector) Back() error {
	if c.complete {
		c.complete = false
		return nil
	}
	if c.index == 0 {
		return fmt.Errorf("%w: already at the first participant", ErrFlowState)
	}
	c.index--
	return nil
}

// Participants hands out the full batch; only valid once collection is done.
func (c *Collector) Participants() ([]ParticipantDraft, error) {
	if !c.complete {
		return nil, fmt.Errorf("%w: %d of %d participants collected", ErrFlowState, c.collected(), c.target)
	}
	out := make([]ParticipantDraft, c.target)
	copy(out, c.entries)
	return out, nil
}

func (c *Collector) collected() int {
	if c.complete {
		return c.target
	}
	return c.index
}
