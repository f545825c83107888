//go:build js && wasm

package main

import (
	"encoding/json"
	"syscall/js"

	"github.com/driftboard/driftboard/internal/canvas"
	"github.com/driftboard/driftboard/internal/document"
)

var editor *canvas.Editor

func main() {
	editor = canvas.NewEditor()

	api := js.Global().Get("Object").New()

	// --- Input (frontend → editor) ---
	api.Set("handleEvent", js.FuncOf(handleEvent))

	// --- Commands (frontend → editor) ---
	api.Set("loadBoard", js.FuncOf(loadBoard))
	api.Set("loadSampleBoard", js.FuncOf(loadSampleBoard))
	api.Set("setMode", js.FuncOf(setMode))
	api.Set("setShapeType", js.FuncOf(setShapeType))
	api.Set("setStyle", js.FuncOf(setStyle))
	api.Set("applyStyleToSelected", js.FuncOf(applyStyleToSelected))
	api.Set("deleteSelected", js.FuncOf(deleteSelected))
	api.Set("resetView", js.FuncOf(resetView))
	api.Set("bringToFront", js.FuncOf(bringToFront))
	api.Set("sendToBack", js.FuncOf(sendToBack))

	// --- Queries (frontend ← editor) ---
	api.Set("render", js.FuncOf(render))
	api.Set("getBoard", js.FuncOf(getBoard))
	api.Set("getMode", js.FuncOf(getMode))
	api.Set("getTransform", js.FuncOf(getTransform))

	// --- Callbacks (editor → frontend) ---
	api.Set("onTransformChange", js.FuncOf(onTransformChange))
	api.Set("onPointerWorld", js.FuncOf(onPointerWorld))
	api.Set("onModeChange", js.FuncOf(onModeChange))
	api.Set("onSelectionChange", js.FuncOf(onSelectionChange))

	js.Global().Set("driftboardEditor", api)
	js.Global().Set("driftboardWasmReady", js.ValueOf(true))

	// Keep the Go runtime alive
	select {}
}

// --- Input ---

func handleEvent(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}

	var ev canvas.Event
	if err := json.Unmarshal([]byte(args[0].String()), &ev); err != nil {
		return js.ValueOf(map[string]interface{}{"error": "invalid event"})
	}

	editor.Handle(ev)
	return nil
}

// --- Commands ---

func loadBoard(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf(map[string]interface{}{"error": "missing board JSON"})
	}

	doc, err := document.Parse([]byte(args[0].String()))
	if err != nil {
		return js.ValueOf(map[string]interface{}{"error": err.Error()})
	}

	doc.Apply(editor)
	return js.ValueOf(map[string]interface{}{"ok": true})
}

func loadSampleBoard(this js.Value, args []js.Value) interface{} {
	boardID := "board_sample"
	if len(args) > 0 && args[0].Type() == js.TypeString {
		boardID = args[0].String()
	}

	document.NewSampleBoard(boardID).Apply(editor)
	return js.ValueOf(map[string]interface{}{"ok": true})
}

func setMode(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	editor.SetMode(canvas.Mode(args[0].String()))
	return nil
}

func setShapeType(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	editor.SetShapeType(canvas.Kind(args[0].String()))
	return nil
}

func setStyle(this js.Value, args []js.Value) interface{} {
	patch, ok := parseStylePatch(args)
	if !ok {
		return nil
	}
	editor.SetStyle(patch)
	return nil
}

func applyStyleToSelected(this js.Value, args []js.Value) interface{} {
	patch, ok := parseStylePatch(args)
	if !ok {
		return nil
	}
	editor.ApplyStyleToSelected(patch)
	return nil
}

func deleteSelected(this js.Value, args []js.Value) interface{} {
	editor.DeleteSelected()
	return nil
}

func resetView(this js.Value, args []js.Value) interface{} {
	editor.ResetView()
	return nil
}

func bringToFront(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	editor.BringToFront(args[0].String())
	return nil
}

func sendToBack(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	editor.SendToBack(args[0].String())
	return nil
}

// --- Queries ---

func render(this js.Value, args []js.Value) interface{} {
	width, height := 800.0, 600.0
	if len(args) >= 2 {
		width = args[0].Float()
		height = args[1].Float()
	}

	frame := canvas.CompileFrame(editor, width, height)
	result, err := frame.ToJSON()
	if err != nil {
		return js.ValueOf("{}")
	}
	return js.ValueOf(result)
}

func getBoard(this js.Value, args []js.Value) interface{} {
	doc := document.NewEmptyBoard("", "")
	doc.Capture(editor)
	data, err := doc.Marshal()
	if err != nil {
		return js.ValueOf("{}")
	}
	return js.ValueOf(string(data))
}

func getMode(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(string(editor.Mode()))
}

func getTransform(this js.Value, args []js.Value) interface{} {
	data, err := json.Marshal(editor.Viewport().Transform())
	if err != nil {
		return js.ValueOf("{}")
	}
	return js.ValueOf(string(data))
}

// --- Callbacks ---

func onTransformChange(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 || args[0].Type() != js.TypeFunction {
		return nil
	}
	cb := args[0]
	editor.OnTransformChange = func(t canvas.Transform) {
		data, _ := json.Marshal(t)
		cb.Invoke(string(data))
	}
	return nil
}

func onPointerWorld(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 || args[0].Type() != js.TypeFunction {
		return nil
	}
	cb := args[0]
	editor.OnPointerWorld = func(p canvas.Point) {
		cb.Invoke(p.X, p.Y)
	}
	return nil
}

func onModeChange(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 || args[0].Type() != js.TypeFunction {
		return nil
	}
	cb := args[0]
	editor.OnModeChange = func(m canvas.Mode) {
		cb.Invoke(string(m))
	}
	return nil
}

func onSelectionChange(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 || args[0].Type() != js.TypeFunction {
		return nil
	}
	cb := args[0]
	editor.OnSelectionChange = func(s *canvas.Shape) {
		if s == nil {
			cb.Invoke(js.Null())
			return
		}
		data, _ := json.Marshal(s)
		cb.Invoke(string(data))
	}
	return nil
}

func parseStylePatch(args []js.Value) (canvas.StylePatch, bool) {
	if len(args) < 1 {
		return canvas.StylePatch{}, false
	}
	var patch canvas.StylePatch
	if err := json.Unmarshal([]byte(args[0].String()), &patch); err != nil {
		return canvas.StylePatch{}, false
	}
	return patch, true
}
