package sequencer_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/attmoc/attmoc/internal/clock"
	"github.com/attmoc/attmoc/internal/script"
	"github.com/attmoc/attmoc/internal/sequencer"
)

var _ = Describe("Sequencer", func() {
	var (
		clk    *clock.FakeClock
		seq    *sequencer.Sequencer
		preset script.Preset
	)

	BeforeEach(func() {
		clk = clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
		preset = script.Preset{
			Name: "bdd",
			Mode: script.ModeTerminal,
			Timing: script.Timing{
				CharDelay: 10 * time.Millisecond,
				LineDelay: 5 * time.Millisecond,
				LoopDelay: 20 * time.Millisecond,
			},
			Lines: script.Script{"$ a", "b"},
		}
	})

	JustBeforeEach(func() {
		var err error
		seq, err = sequencer.New(preset, sequencer.WithClock(clk))
		Expect(err).NotTo(HaveOccurred())
		seq.Start()
	})

	AfterEach(func() {
		seq.Stop()
	})

	Context("while typing a line", func() {
		It("reveals characters left to right, one per interval", func() {
			Expect(seq.Transcript().Partial).To(BeEmpty())
			clk.Advance(10 * time.Millisecond)
			Expect(seq.Transcript().Partial).To(Equal("$"))
			clk.Advance(10 * time.Millisecond)
			Expect(seq.Transcript().Partial).To(Equal("$ "))
			clk.Advance(10 * time.Millisecond)
			Expect(seq.Transcript().Partial).To(Equal("$ a"))
		})

		It("never reveals a partial character interval early", func() {
			clk.Advance(9 * time.Millisecond)
			Expect(seq.Transcript().Partial).To(BeEmpty())
		})
	})

	Context("when a line is complete", func() {
		BeforeEach(func() {
			preset.Lines = script.Script{"ab", "c"}
		})

		It("commits it after the line pause and starts the next at char zero", func() {
			clk.Advance(20 * time.Millisecond)
			tr := seq.Transcript()
			Expect(tr.Phase).To(Equal(sequencer.LineComplete))
			Expect(tr.Lines).To(BeEmpty())

			clk.Advance(5 * time.Millisecond)
			tr = seq.Transcript()
			Expect(tr.Lines).To(Equal([]string{"ab"}))
			Expect(tr.Line).To(Equal(1))
			Expect(tr.Char).To(BeZero())
		})
	})

	Context("with blank lines", func() {
		BeforeEach(func() {
			preset.Lines = script.Script{"", "", "x"}
		})

		It("commits them without typing", func() {
			clk.Advance(10 * time.Millisecond)
			tr := seq.Transcript()
			Expect(tr.Lines).To(Equal([]string{"", ""}))
			Expect(tr.Partial).To(BeEmpty())
			Expect(tr.Line).To(Equal(2))
		})
	})

	Context("at the end of the script", func() {
		It("pauses, then restarts from an empty transcript", func() {
			clk.Advance(50 * time.Millisecond)
			tr := seq.Transcript()
			Expect(tr.Phase).To(Equal(sequencer.ScriptComplete))
			Expect(tr.Lines).To(Equal([]string{"$ a", "b"}))

			clk.Advance(19 * time.Millisecond)
			Expect(seq.Transcript().Lines).To(HaveLen(2))

			clk.Advance(time.Millisecond)
			tr = seq.Transcript()
			Expect(tr.Empty()).To(BeTrue())
			Expect(tr.Phase).To(Equal(sequencer.Typing))
		})

		It("keeps looping indefinitely", func() {
			for loop := 0; loop < 5; loop++ {
				clk.Advance(70 * time.Millisecond)
				Expect(seq.Transcript().Empty()).To(BeTrue())
			}
			Expect(clk.PendingCount()).To(Equal(1))
		})
	})

	Context("when the epoch changes", func() {
		It("discards progress and the pending timer", func() {
			clk.Advance(55 * time.Millisecond)
			Expect(seq.Reset(1)).To(BeTrue())
			Expect(seq.Transcript().Empty()).To(BeTrue())
			Expect(clk.PendingCount()).To(Equal(1))
		})

		It("ignores a repeated epoch", func() {
			Expect(seq.Reset(3)).To(BeTrue())
			clk.Advance(10 * time.Millisecond)
			Expect(seq.Reset(3)).To(BeFalse())
			Expect(seq.Transcript().Partial).To(Equal("$"))
		})
	})

	Context("in editor mode", func() {
		BeforeEach(func() {
			preset.Mode = script.ModeEditor
			preset.Lines = script.Script{"a\nb", "c"}
		})

		It("shows one entry at a time", func() {
			clk.Advance(30 * time.Millisecond)
			Expect(seq.Transcript().Partial).To(Equal("a\nb"))
			clk.Advance(5 * time.Millisecond)
			tr := seq.Transcript()
			Expect(tr.Lines).To(BeEmpty())
			Expect(tr.Partial).To(BeEmpty())
			Expect(tr.Line).To(Equal(1))
		})
	})
})
