// invaders is a minimal Space Invaders cabinet host driver. It is not
// part of the 8080 core: it is the external collaborator the core
// spec describes as out of scope, wired up here purely to exercise the
// core's public interfaces (memory.Bank, iobus.Bus, cpu.CPU) end to
// end against a real ROM, the way the teacher's vcs/vcs_main.go drives
// an atari2600.VCS over SDL2.
package main

import (
	"flag"
	"image"
	"image/color"
	"io/ioutil"
	"log"
	"sync"

	"github.com/FiloSanza/intel-8080/cpu"
	"github.com/FiloSanza/intel-8080/memory"
	"github.com/veandco/go-sdl2/sdl"
	"golang.org/x/image/draw"
)

var (
	rom   = flag.String("rom", "", "Path to a Space Invaders ROM image (invaders.rom layout, loaded at 0x0000)")
	scale = flag.Int("scale", 2, "Scale factor to render the screen at")
)

const (
	screenWidth  = 224
	screenHeight = 256

	vramStart = 0x2400
	vramEnd   = 0x4000

	instructionsPerHalfFrame = 2000
)

// shiftRegister implements the cabinet's only interesting I/O
// peripheral: an 8-bit-in/16-bit-shift-out register used by the
// firmware for cheap pixel-accurate sprite collision math. Port 2
// sets the shift amount, port 4 shifts a new byte in from the top,
// port 3 reads the shifted result back out.
type shiftRegister struct {
	value  uint16
	offset uint8
}

func (s *shiftRegister) In(port uint8) uint8 {
	if port != 3 {
		return 0
	}
	return uint8(s.value >> (8 - s.offset))
}

func (s *shiftRegister) Out(port uint8, val uint8) {
	switch port {
	case 2:
		s.offset = val & 0x07
	case 4:
		s.value = (s.value >> 8) | (uint16(val) << 8)
	}
}

// fastImage writes 8080 video RAM directly into an SDL surface,
// avoiding the per-pixel color.Color conversion overhead that
// draw.Image.Set incurs (mirrors the teacher's vcs/vcs_main.go
// fastImage).
type fastImage struct {
	surface *sdl.Surface
	data    []byte
}

func (f *fastImage) Set(x, y int, c color.Color) {
	i := int32(y)*f.surface.Pitch + int32(x)*int32(f.surface.Format.BytesPerPixel)
	r, g, b, a := c.RGBA()
	f.data[i+0] = uint8(b >> 8)
	f.data[i+1] = uint8(g >> 8)
	f.data[i+2] = uint8(r >> 8)
	f.data[i+3] = uint8(a >> 8)
}

func (f *fastImage) ColorModel() color.Model { return f.surface.ColorModel() }
func (f *fastImage) Bounds() image.Rectangle { return f.surface.Bounds() }
func (f *fastImage) At(x, y int) color.Color { return f.surface.At(x, y) }

// drawVRAM renders the 1-bit-per-pixel, column-major video RAM region
// into img at native resolution. Space Invaders' CRT is mounted
// rotated 90 degrees, so column x of VRAM becomes row x of the
// displayed image.
func drawVRAM(mem memory.Bank, img draw.Image) {
	for col := 0; col < screenHeight; col++ {
		for row := 0; row < screenWidth/8; row++ {
			addr := uint16(vramStart + col*(screenWidth/8) + row)
			bits := mem.Read(addr)
			for bit := 0; bit < 8; bit++ {
				on := bits&(1<<uint(bit)) != 0
				x := col
				y := screenWidth - 1 - (row*8 + bit)
				px := color.RGBA{A: 0xFF}
				if on {
					px.R, px.G, px.B = 0xFF, 0xFF, 0xFF
				}
				img.Set(x, y, px)
			}
		}
	}
}

func main() {
	flag.Parse()
	if *rom == "" {
		log.Fatalf("Usage: %s -rom <invaders.rom>", "invaders")
	}

	b, err := ioutil.ReadFile(*rom)
	if err != nil {
		log.Fatalf("Can't load rom: %v", err)
	}

	mem, err := memory.NewROM(0x2000, 0x4000)
	if err != nil {
		log.Fatalf("Can't build memory map: %v", err)
	}
	mem.LoadROM(b)

	bus := &shiftRegister{}
	c, err := cpu.Init(&cpu.Config{Memory: mem, IO: bus})
	if err != nil {
		log.Fatalf("Can't init cpu: %v", err)
	}

	var window *sdl.Window
	fi := &fastImage{}
	native := image.NewRGBA(image.Rect(0, 0, screenHeight, screenWidth))

	sdl.Main(func() {
		var wg sync.WaitGroup
		wg.Add(1)
		sdl.Do(func() {
			if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
				log.Fatalf("Can't init SDL: %v", err)
			}
			window, err = sdl.CreateWindow("invaders", sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
				int32(screenHeight**scale), int32(screenWidth**scale), sdl.WINDOW_SHOWN)
			if err != nil {
				log.Fatalf("Can't create window: %v", err)
			}
			fi.surface, err = window.GetSurface()
			if err != nil {
				log.Fatalf("Can't get window surface: %v", err)
			}
			fi.data = fi.surface.Pixels()
			wg.Done()
		})
		wg.Wait()
		defer func() {
			window.Destroy()
			sdl.Quit()
		}()

		for {
			running := true
			sdl.Do(func() {
				for e := sdl.PollEvent(); e != nil; e = sdl.PollEvent() {
					if _, ok := e.(*sdl.QuitEvent); ok {
						running = false
					}
				}
			})
			if !running {
				return
			}

			for i := 0; i < instructionsPerHalfFrame; i++ {
				c.Step()
			}
			c.Interrupt(0xCF) // RST 1: mid-screen

			for i := 0; i < instructionsPerHalfFrame; i++ {
				c.Step()
			}
			c.Interrupt(0xD7) // RST 2: vblank

			sdl.Do(func() {
				drawVRAM(mem, native)
				draw.NearestNeighbor.Scale(fi, fi.Bounds(), native, native.Bounds(), draw.Over, nil)
				window.UpdateSurface()
			})
		}
	})
}
