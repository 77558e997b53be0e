package scene_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/avehn/tracefield/internal/config"
	"github.com/avehn/tracefield/internal/field"
	"github.com/avehn/tracefield/internal/scene"
)

// dialogueGolden is the reference composition rendered on an 84×20
// field with the legend on. Any change to the perturbation, the step
// rules, or the compositing order shows up here.
var dialogueGolden = strings.Join([]string{
	"         ·",
	"        ·",
	"    ···",
	"  ··",
	"",
	"    ——      ∧∧               ~~",
	"      ——   ∧∧∧∧∧∧∧∧* *—— *     ~~  ~~   ~~   ~~",
	"     —— ——∧∧   ∧∧——∧∧ ∧∧  —— * —— ~~ * *~~ *~~",
	"       ∧∧——∧∧——**——*——  —— ——  ~~ ————∎∎      ~~~~  ~~",
	"           ——   ——∎∎    ——~~——**——*—— ∎∎",
	"                 ————∎∎——∎∎  ∎∎   ——    ∎∎ ∎∎",
	"                     ——        ———— ——",
	"                   ——   ——          ——",
	"                      ——         ——",
	"",
	"",
	"",
	"",
	"",
	"",
	" legend: ··=ask  ——=answer  ∧∧=turn  ~~=doubt  **=care  ∎∎=resolve",
}, "\n")

var _ = Describe("Play", func() {
	It("reproduces the reference composition exactly", func() {
		sc := config.GetPreset("dialogue")
		f := field.New(sc.Width, sc.Height)
		Expect(scene.Play(f, sc)).To(Succeed())
		Expect(f.Render(sc.Legend)).To(Equal(dialogueGolden))
	})

	It("is byte-identical across repeated plays", func() {
		render := func() string {
			sc := config.GetPreset("dialogue")
			f := field.New(sc.Width, sc.Height)
			Expect(scene.Play(f, sc)).To(Succeed())
			return scene.Compose(f, sc)
		}
		Expect(render()).To(Equal(render()))
	})

	It("renders the same picture braided or layered", func() {
		sc := config.GetPreset("dialogue")
		layered := field.New(sc.Width, sc.Height)
		Expect(scene.Play(layered, sc)).To(Succeed())

		sc.Braided = true
		braidedField := field.New(sc.Width, sc.Height)
		Expect(scene.Play(braidedField, sc)).To(Succeed())
		Expect(braidedField.Layers).To(HaveLen(1))

		Expect(braidedField.Render(sc.Legend)).To(Equal(layered.Render(sc.Legend)))
	})

	It("leaves an empty scene blank", func() {
		sc := config.DefaultScene()
		sc.Width, sc.Height = 12, 3
		f := field.New(sc.Width, sc.Height)
		Expect(scene.Play(f, sc)).To(Succeed())
		Expect(f.Render(false)).To(Equal("\n\n"))
		Expect(f.Render(true)).To(Equal("\n\n\n" + field.LegendLine()))
	})

	It("keeps partial progress when a stroke breaks the sense", func() {
		sc := config.DefaultScene()
		sc.Strokes = []config.Stroke{
			{X: 2, Y: 3, Steps: 4, Tag: "care", Stride: 1, Tone: 0.5},
			{X: 0, Y: 0, Steps: -1, Tag: "ask", Stride: 1, Tone: 0.5},
		}
		f := field.New(sc.Width, sc.Height)

		err := scene.Play(f, sc)
		var disc scene.Discontinuity
		Expect(err).To(BeAssignableToTypeOf(disc))
		Expect(err.(scene.Discontinuity).Stroke).To(Equal(1))

		Expect(f.Layers).To(HaveLen(1))
		Expect(f.Render(false)).NotTo(Equal(strings.Repeat("\n", sc.Height-1)))
	})

	It("refuses a field with no extent", func() {
		sc := config.GetPreset("dialogue")
		err := scene.Play(field.New(0, 0), sc)
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("no extent"))
	})
})

var _ = Describe("Compose", func() {
	It("frames the render with title, signature, and coda", func() {
		sc := config.GetPreset("dialogue")
		f := field.New(sc.Width, sc.Height)
		Expect(scene.Play(f, sc)).To(Succeed())

		out := scene.Compose(f, sc)
		Expect(out).To(HavePrefix("— inscription — silent\n\n"))
		Expect(out).To(ContainSubstring(dialogueGolden))
		Expect(out).To(HaveSuffix(sc.Coda + "\n"))
	})
})

var _ = Describe("Signature", func() {
	It("falls back to unsigned when no token is set", func() {
		Expect(scene.Signature{}.Key()).To(Equal("unsigned"))
		Expect(scene.Signature{Token: "silent"}.Key()).To(Equal("silent"))
	})
})
