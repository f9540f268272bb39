package subtitles

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/forPelevin/goalcut/internal/domain/highlights"
	"github.com/forPelevin/goalcut/internal/types"
)

// RenderCommentaryASS renders the commentary spoken inside w as an ASS script
// with clip-local timing. Words found in vocab are drawn in the accent color.
// A window without speech yields a script with no dialogue events.
func RenderCommentaryASS(words []types.TranscriptWord, w types.ClipWindow, vocab highlights.Vocabulary) string {
	cw := collectWords(words, w.Start, w.End, vocab)
	var b strings.Builder
	b.WriteString(assHeader())
	b.WriteString("\n[Events]\n")
	b.WriteString("Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text\n")
	if len(cw) == 0 {
		return b.String()
	}
	for _, ln := range packWords(cw) {
		b.WriteString("Dialogue: 0,")
		b.WriteString(assTime(ln.Start))
		b.WriteString(",")
		b.WriteString(assTime(ln.End))
		b.WriteString(",Commentary,,0,0,0,,")
		parts := make([]string, 0, len(ln.Words))
		for _, wd := range ln.Words {
			if wd.Hit {
				parts = append(parts, fmt.Sprintf("{\\c%s}%s{\\r}", accentColour, wd.Text))
				continue
			}
			parts = append(parts, wd.Text)
		}
		b.WriteString(strings.Join(parts, " "))
		b.WriteString("\n")
	}
	return b.String()
}

// HitTerms returns the vocabulary words spoken inside w, in order.
func HitTerms(words []types.TranscriptWord, w types.ClipWindow, vocab highlights.Vocabulary) []string {
	var out []string
	for _, cw := range collectWords(words, w.Start, w.End, vocab) {
		if cw.Hit {
			out = append(out, cw.Raw)
		}
	}
	return out
}

const accentColour = "&H0000D7FF&"

type cword struct {
	Start time.Duration
	End   time.Duration
	Text  string
	Raw   string
	Hit   bool
}

type line struct {
	Start time.Duration
	End   time.Duration
	Words []cword
}

func collectWords(words []types.TranscriptWord, start, end time.Duration, vocab highlights.Vocabulary) []cword {
	var out []cword
	for _, w := range words {
		ws := dur(w.Start)
		we := dur(w.End)
		if we <= start || ws >= end {
			continue
		}
		text := strings.TrimSpace(w.Text)
		if text == "" {
			continue
		}
		if ws < start {
			ws = start
		}
		if we > end {
			we = end
		}
		out = append(out, cword{
			Start: ws - start,
			End:   we - start,
			Text:  sanitizeASS(text),
			Raw:   w.Text,
			Hit:   vocab.Contains(w.Text),
		})
	}
	return out
}

func packWords(words []cword) []line {
	var out []line
	cur := line{Start: words[0].Start}
	// Short lines: clips are small and only a few seconds long.
	const (
		charBudget = 32
		wordBudget = 6
	)
	curLen := 0
	for i, w := range words {
		wl := len([]rune(w.Text))
		nextLen := curLen
		if curLen > 0 {
			nextLen++
		}
		nextLen += wl
		if len(cur.Words) > 0 && (len(cur.Words) >= wordBudget || nextLen > charBudget) {
			cur.End = cur.Words[len(cur.Words)-1].End
			out = append(out, cur)
			cur = line{Start: w.Start}
			curLen = 0
		}
		cur.Words = append(cur.Words, w)
		if curLen > 0 {
			curLen++
		}
		curLen += wl
		if i == len(words)-1 {
			cur.End = w.End
			out = append(out, cur)
		}
	}
	return out
}

func assHeader() string {
	return strings.TrimSpace(`
[Script Info]
ScriptType: v4.00+
PlayResX: 480
PlayResY: 360
ScaledBorderAndShadow: yes

[V4+ Styles]
Format: Name, Fontname, Fontsize, PrimaryColour, SecondaryColour, OutlineColour, BackColour, Bold, Italic, Underline, StrikeOut, ScaleX, ScaleY, Spacing, Angle, BorderStyle, Outline, Shadow, Alignment, MarginL, MarginR, MarginV, Encoding
Style: Commentary, Inter, 26, &H00FFFFFF, &H00FFFFFF, &H00000000, &H64000000, 1,0,0,0,100,100,0,0,1,2,1,2, 16,16,18,1
`)
}

func assTime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	hs := int(d / time.Hour)
	d -= time.Duration(hs) * time.Hour
	ms := int(d / time.Minute)
	d -= time.Duration(ms) * time.Minute
	s := int(d / time.Second)
	d -= time.Duration(s) * time.Second
	cs := int(d / (10 * time.Millisecond))
	return fmt.Sprintf("%d:%02d:%02d.%02d", hs, ms, s, cs)
}

func sanitizeASS(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "{", "(")
	s = strings.ReplaceAll(s, "}", ")")
	return strings.TrimSpace(s)
}

func dur(sec float64) time.Duration {
	return time.Duration(math.Round(sec * float64(time.Second)))
}
