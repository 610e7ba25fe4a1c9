// Package ui contains the Bubble Tea program that hosts a command session in
// the terminal. The Model type focuses on message orchestration, while
// dedicated helpers own navigation, input, rendering and refresh.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages. While an Input
//     command is being edited, key presses go to the text input first.
//     Otherwise the message is routed through a typed handler registry so
//     each tea.Msg is handled by a focused function.
//   - Navigation helpers (navigation.go) manage the stack of levels: the
//     toolbar at the bottom and one level per opened dropdown. Filter and text
//     entry helpers (input.go) keep typing concerns out of the event loop.
//
// State ownership:
//   - Commands and their state live in the session. Every refresh runs a UI
//     pass: the toolbar is described afresh, resolved to its live instances
//     and rendered through the render registry into state.Level rows.
//   - The model subscribes to every command it shows. A notification only
//     marks the model dirty; the refresh runs once at the end of Update.
package ui
