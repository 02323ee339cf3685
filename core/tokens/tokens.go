package tokens

import (
	"fmt"
	"strings"

	"github.com/pkoukk/tiktoken-go"
)

// charsPerToken is the heuristic ratio shared by all Permem SDKs.
const charsPerToken = 4

// tiktokenEncoding is the encoding used by the opt-in tokenizer estimator.
const tiktokenEncoding = "cl100k_base"

// Estimator estimates the token count of a set of message contents. It is
// only consulted when the caller omits an explicit context length.
type Estimator interface {
	Estimate(contents []string) int
}

// Heuristic estimates tokens as ceil(len(joined contents)/4), where the
// contents are joined with a single space. This matches the estimate the
// other Permem SDKs send, byte for byte, so the server's threshold logic
// behaves identically regardless of client language.
type Heuristic struct{}

// Estimate implements [Estimator]. An empty content set estimates to zero.
func (Heuristic) Estimate(contents []string) int {
	joined := strings.Join(contents, " ")
	if joined == "" {
		return 0
	}
	return (len(joined) + charsPerToken - 1) / charsPerToken
}

// Tiktoken estimates tokens with the cl100k_base BPE encoding. It counts
// each content independently; no separator tokens are added between
// messages. Construct it with [NewTiktoken].
type Tiktoken struct {
	encoding *tiktoken.Tiktoken
}

// NewTiktoken returns a [Tiktoken] estimator. Loading the encoding can fail
// (it may be fetched on first use), in which case the caller should fall back
// to [Heuristic].
func NewTiktoken() (*Tiktoken, error) {
	encoding, err := tiktoken.GetEncoding(tiktokenEncoding)
	if err != nil {
		return nil, fmt.Errorf("error loading %s encoding: %w", tiktokenEncoding, err)
	}
	return &Tiktoken{encoding: encoding}, nil
}

// Estimate implements [Estimator].
func (t *Tiktoken) Estimate(contents []string) int {
	total := 0
	for _, content := range contents {
		total += len(t.encoding.Encode(content, nil, nil))
	}
	return total
}
