// disassemble loads a raw 8080 ROM image and prints its disassembly to
// stdout, one instruction per line, starting at a configurable address.
package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"log"

	"github.com/FiloSanza/intel-8080/disassemble"
	"github.com/FiloSanza/intel-8080/memory"
)

var (
	startAddr = flag.Int("start_addr", 0x0000, "Address to start loading and disassembling the ROM image at")
)

func main() {
	flag.Parse()
	if len(flag.Args()) != 1 {
		log.Fatalf("Usage: %s [-start_addr <addr>] <rom file>", "disassemble")
	}
	fn := flag.Args()[0]

	b, err := ioutil.ReadFile(fn)
	if err != nil {
		log.Fatalf("Can't open %s - %v", fn, err)
	}

	mem := memory.NewLinear()
	mem.Load(uint16(*startAddr), b)

	addr := uint16(*startAddr)
	end := *startAddr + len(b)
	for int(addr) < end {
		text, length := disassemble.Step(addr, mem)
		fmt.Printf("%.4x  %s\n", addr, text)
		addr += uint16(length)
	}
}
