package widget_test

import (
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/gapminder/internal/document"
	"github.com/san-kum/gapminder/internal/widget"
)

type fakeHost struct {
	next      document.CallbackID
	callbacks map[document.CallbackID]func()
	intervals map[document.CallbackID]time.Duration
	adds      int
	removes   int
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		callbacks: make(map[document.CallbackID]func()),
		intervals: make(map[document.CallbackID]time.Duration),
	}
}

func (h *fakeHost) AddPeriodicCallback(fn func(), interval time.Duration) document.CallbackID {
	h.next++
	h.adds++
	h.callbacks[h.next] = fn
	h.intervals[h.next] = interval
	return h.next
}

func (h *fakeHost) RemovePeriodicCallback(id document.CallbackID) error {
	if _, ok := h.callbacks[id]; !ok {
		return document.ErrUnknownCallback
	}
	h.removes++
	delete(h.callbacks, id)
	return nil
}

// tick fires every registered callback once, like one elapsed interval.
func (h *fakeHost) tick() {
	for _, fn := range h.callbacks {
		fn()
	}
}

type fakePlot struct {
	keys []int
	err  error
}

func (p *fakePlot) Update(key int) error {
	p.keys = append(p.keys, key)
	return p.err
}

var _ = Describe("Controller", func() {
	var (
		host   *fakeHost
		plot   *fakePlot
		slider *widget.Slider
		button *widget.Button
		ctrl   *widget.Controller
	)

	BeforeEach(func() {
		var err error
		host = newFakeHost()
		plot = &fakePlot{}
		slider, err = widget.NewSlider(1952, 2007, 1952, 1, "Year")
		Expect(err).NotTo(HaveOccurred())
		button = widget.NewButton(12)
		ctrl = widget.NewController(host, plot, slider, button)
	})

	Describe("the play/pause button", func() {
		It("starts paused with the play label", func() {
			Expect(button.State).To(Equal(widget.Paused))
			Expect(button.Label()).To(Equal("► Play"))
			Expect(ctrl.Playing()).To(BeFalse())
		})

		It("registers exactly one periodic callback when clicked", func() {
			button.Click()

			Expect(button.Label()).To(Equal("❚❚ Pause"))
			Expect(host.callbacks).To(HaveLen(1))
			id, ok := ctrl.Timer()
			Expect(ok).To(BeTrue())
			Expect(host.intervals[id]).To(Equal(200 * time.Millisecond))
		})

		It("removes the callback on the second click", func() {
			button.Click()
			button.Click()

			Expect(button.Label()).To(Equal("► Play"))
			Expect(host.callbacks).To(BeEmpty())
			Expect(host.adds).To(Equal(1))
			Expect(host.removes).To(Equal(1))
		})

		It("ignores Play while playing and Pause while paused", func() {
			ctrl.Pause()
			Expect(host.removes).To(BeZero())

			ctrl.Play()
			ctrl.Play()
			Expect(host.adds).To(Equal(1))

			ctrl.Pause()
			ctrl.Pause()
			Expect(host.removes).To(Equal(1))
		})

		It("follows the timer handle, not the button state", func() {
			button.State = widget.Playing
			Expect(ctrl.Playing()).To(BeFalse())

			button.Click()
			Expect(ctrl.Playing()).To(BeTrue())
			Expect(host.adds).To(Equal(1))
			Expect(button.State).To(Equal(widget.Playing))

			button.State = widget.Paused
			Expect(ctrl.Playing()).To(BeTrue())
			ctrl.Pause()
			Expect(host.removes).To(Equal(1))
			Expect(button.State).To(Equal(widget.Paused))
			_, ok := ctrl.Timer()
			Expect(ok).To(BeFalse())
		})

		It("uses the configured interval", func() {
			other := widget.NewController(host, plot, slider, widget.NewButton(0), widget.WithInterval(50*time.Millisecond))
			other.Play()
			id, _ := other.Timer()
			Expect(host.intervals[id]).To(Equal(50 * time.Millisecond))
		})
	})

	Describe("animation", func() {
		It("advances one year per tick", func() {
			ctrl.Play()
			host.tick()
			host.tick()

			Expect(slider.Value).To(Equal(1954))
			Expect(plot.keys).To(Equal([]int{1953, 1954}))
		})

		It("wraps from the end back to the start", func() {
			slider.SetValue(2007)
			ctrl.Play()
			host.tick()

			Expect(slider.Value).To(Equal(1952))
			Expect(plot.keys).To(Equal([]int{2007, 1952}))
		})

		It("stops advancing once paused", func() {
			ctrl.Play()
			host.tick()
			ctrl.Pause()
			host.tick()

			Expect(slider.Value).To(Equal(1953))
		})
	})

	Describe("the slider", func() {
		It("redraws the plot for the dragged year", func() {
			ctrl.Seek(1957)

			Expect(plot.keys).To(Equal([]int{1957}))
		})

		It("clamps drags at the bounds without wrapping", func() {
			ctrl.Drag(-1)
			Expect(slider.Value).To(Equal(1952))
			Expect(plot.keys).To(BeEmpty())

			ctrl.Seek(2006)
			ctrl.Drag(5)
			Expect(slider.Value).To(Equal(2007))
		})

		It("keeps the last plot error", func() {
			plot.err = errors.New("boom")
			ctrl.Seek(1960)

			Expect(ctrl.Err()).To(MatchError("boom"))
		})
	})
})

var _ = Describe("Slider", func() {
	It("rejects inverted bounds and non-positive steps", func() {
		_, err := widget.NewSlider(2007, 1952, 1952, 1, "Year")
		Expect(errors.Is(err, widget.ErrInvalidBounds)).To(BeTrue())

		_, err = widget.NewSlider(1952, 2007, 1952, 0, "Year")
		Expect(errors.Is(err, widget.ErrInvalidBounds)).To(BeTrue())
	})

	It("clamps the initial value", func() {
		s, err := widget.NewSlider(1952, 2007, 3000, 1, "Year")
		Expect(err).NotTo(HaveOccurred())
		Expect(s.Value).To(Equal(2007))
		Expect(s.Fraction()).To(Equal(1.0))
	})

	It("fires change handlers only on a real change", func() {
		s, _ := widget.NewSlider(0, 10, 5, 1, "x")
		var changes [][2]int
		s.OnChange(func(prev, next int) { changes = append(changes, [2]int{prev, next}) })

		s.SetValue(5)
		s.SetValue(7)
		s.SetValue(99)

		Expect(changes).To(Equal([][2]int{{5, 7}, {7, 10}}))
	})

	It("renders the title and value", func() {
		s, _ := widget.NewSlider(1952, 2007, 1957, 1, "Year")
		out := s.Render()
		Expect(out).To(ContainSubstring("Year"))
		Expect(out).To(ContainSubstring("1957"))
	})
})

var _ = Describe("Button", func() {
	It("renders the derived label", func() {
		b := widget.NewButton(12)
		Expect(b.Render()).To(ContainSubstring("► Play"))
		b.State = widget.Playing
		Expect(b.Render()).To(ContainSubstring("❚❚ Pause"))
		Expect(b.State.String()).To(Equal("playing"))
	})
})
