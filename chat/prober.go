package chat

import (
	"fmt"
	"strings"
)

// Sentinel payloads used to recover boundary text from a template. They
// must never occur in real message content.
const (
	sentinelOne = "<<|user-message-1|>>"
	sentinelTwo = "<<|user-message-2|>>"
)

// GenerationPrompt reverse-engineers the literal prefix and suffix a
// renderer emits around one assistant message (or one user message when
// impersonate is true), without the template declaring them separately.
//
// It renders two consecutive messages of the probed role carrying distinct
// sentinel payloads. The text between the sentinels is the closing suffix of
// the first message followed by the opening prefix of the second; the text
// after the second sentinel is the suffix alone, so the prefix falls out by
// length.
//
// When stripTrailingSpaces is set, trailing spaces are removed from the
// prefix so generated content can be concatenated directly onto it.
//
// Returns ErrProbe if either sentinel does not appear verbatim in the
// rendered output, which means the template escapes or reorders content and
// cannot be probed.
func GenerationPrompt(render Renderer, impersonate, stripTrailingSpaces bool) (prefix, suffix string, err error) {
	role := RoleAssistant
	if impersonate {
		role = RoleUser
	}

	out, err := render([]Message{
		{Role: role, Content: sentinelOne},
		{Role: role, Content: sentinelTwo},
	})
	if err != nil {
		return "", "", err
	}

	first := strings.Index(out, sentinelOne)
	second := strings.Index(out, sentinelTwo)
	if first < 0 || second < 0 {
		return "", "", fmt.Errorf("%w: probing %s boundaries", ErrProbe, role)
	}
	if second < first+len(sentinelOne) {
		return "", "", fmt.Errorf("%w: template reordered %s messages", ErrProbe, role)
	}

	suffixPlusPrefix := out[first+len(sentinelOne) : second]
	suffix = out[second+len(sentinelTwo):]
	if len(suffix) > len(suffixPlusPrefix) {
		return "", "", fmt.Errorf("%w: inconsistent %s boundaries", ErrProbe, role)
	}
	prefix = suffixPlusPrefix[len(suffix):]

	if stripTrailingSpaces {
		prefix = strings.TrimRight(prefix, " ")
	}

	return prefix, suffix, nil
}
