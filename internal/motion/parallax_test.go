package motion

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zaaray/portfolio/internal/dom/domtest"
)

func TestParallaxOffset(t *testing.T) {
	p := HeroParallax()
	assert.InDelta(t, 0, p.Offset(-50), 1e-9)
	assert.InDelta(t, 0, p.Offset(0), 1e-9)
	assert.InDelta(t, 30, p.Offset(150), 1e-9)
	assert.InDelta(t, 60, p.Offset(300), 1e-9)
	assert.InDelta(t, 60, p.Offset(5000), 1e-9)

	assert.InDelta(t, 7, Parallax{FromY: 10, ToY: 10, FromOffset: 7, ToOffset: 9}.Offset(10), 1e-9)
}

func TestParallaxMount(t *testing.T) {
	win := domtest.NewWindow(900)
	art := domtest.NewElement("div", ParallaxAttr, "")
	doc := domtest.NewDocument().Add(art)

	release := HeroParallax().Mount(win, doc)
	assert.Equal(t, "translateY(0px)", art.Style["transform"])
	assert.True(t, win.ListenerOptions("scroll")[0].Passive)

	win.ScrollTo(150)
	assert.Equal(t, "translateY(30px)", art.Style["transform"])

	release()
	win.ScrollTo(300)
	assert.Equal(t, "translateY(30px)", art.Style["transform"])
	assert.Equal(t, 0, win.ListenerCount("scroll"))
}

func TestParallaxWithoutTargets(t *testing.T) {
	win := domtest.NewWindow(900)
	release := HeroParallax().Mount(win, domtest.NewDocument())
	release()
	assert.Equal(t, 0, win.ListenerCount("scroll"))
}
