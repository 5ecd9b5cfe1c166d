package bytepair

import (
	"fmt"
	"runtime"
	"sync"
	"unicode"
)

// parallel runs fn for every index in [0, n) on at most NumCPU goroutines.
func parallel(n int, fn func(int)) {
	workers := runtime.NumCPU()
	if workers > n {
		workers = n
	}
	ch := make(chan int, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for idx := range ch {
				fn(idx)
			}
		}()
	}
	for i := 0; i < n; i++ {
		ch <- i
	}
	close(ch)
	wg.Wait()
}

// fmtShow renders token bytes for logs, escaping what is not printable.
func fmtShow(data []byte) string {
	var ret string
	for _, b := range data {
		ch := rune(b)
		if b < 0x80 && (unicode.IsLetter(ch) ||
			unicode.IsNumber(ch) ||
			unicode.IsPunct(ch) ||
			unicode.IsSymbol(ch) ||
			ch == ' ') {
			ret += string(ch)
			continue
		}
		ret += fmt.Sprintf("\\x%02x", b)
	}
	return ret
}
