//go:build js && wasm

package host

import "syscall/js"

// OnLoad runs fn once the page has finished loading (on the window's load event). If the page has already loaded,
// fn runs immediately.
func OnLoad(fn func()) {

	trigger := NewLoadTrigger(fn)

	if js.Global().Get("document").Get("readyState").String() == "complete" {
		trigger.Signal()
		return
	}

	var listener js.Func
	listener = js.FuncOf(func(this js.Value, args []js.Value) any {
		js.Global().Call("removeEventListener", "load", listener)
		listener.Release()
		trigger.Signal()
		return nil
	})

	js.Global().Call("addEventListener", "load", listener)

}
