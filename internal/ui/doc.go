// Package ui formats sm4tool's user-facing messages.
//
// Each formatter names a kind of content rather than a color:
//
//	ui.Success.Sprint("✓") + " Encrypted " + ui.Path.Sprint("notes.txt.sm4")
//	ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("sm4tool keygen")
//	ui.Key.Sprint("0123456789ABCDEFFEDCBA9876543210")
//
// Output is colored on a capable terminal. With NO_COLOR set, or when
// fatih/color detects no color support, Code, Key, Highlight and Muted fall
// back to text decorations (`code`, [key], 'value', (detail)) and the rest
// print unchanged.
package ui
