// Package apidocs holds a static registry of platform API names, the data
// behind the apidocs command. The table is hard-coded; filtering is by
// platform and kind predicates plus fuzzy name ranking.
package apidocs

// Entry describes one platform API.
type Entry struct {
	Name     string
	Platform string // "macos", "ios", or "all"
	Kind     string // "class", "protocol", "function", "property"
	Summary  string
}

// Platforms and kinds accepted by the filter predicates.
var (
	Platforms = []string{"macos", "ios", "all"}
	Kinds     = []string{"class", "protocol", "function", "property"}
)

// Registry is the full API table, grouped by framework and kept in a stable
// hand-maintained order.
var Registry = []Entry{
	// AppKit
	{Name: "NSWindow", Platform: "macos", Kind: "class", Summary: "A window an app displays on screen"},
	{Name: "NSPanel", Platform: "macos", Kind: "class", Summary: "A special window for auxiliary functions"},
	{Name: "NSApplication", Platform: "macos", Kind: "class", Summary: "The app object managing the event loop"},
	{Name: "NSView", Platform: "macos", Kind: "class", Summary: "The base drawing and event-handling region"},
	{Name: "NSTextField", Platform: "macos", Kind: "class", Summary: "Editable or static text display"},
	{Name: "NSTableView", Platform: "macos", Kind: "class", Summary: "Tabular row display"},
	{Name: "NSStatusBar", Platform: "macos", Kind: "class", Summary: "The system-wide menu bar status area"},
	{Name: "NSStatusItem", Platform: "macos", Kind: "class", Summary: "An item in the menu bar status area"},
	{Name: "NSEvent", Platform: "macos", Kind: "class", Summary: "Keyboard, mouse, and trackpad event record"},
	{Name: "NSEvent.addGlobalMonitorForEvents", Platform: "macos", Kind: "function", Summary: "Observe events delivered to other apps"},
	{Name: "NSRunningApplication", Platform: "macos", Kind: "class", Summary: "A running app instance"},
	{Name: "NSWorkspace", Platform: "macos", Kind: "class", Summary: "Launch apps and open files and URLs"},
	{Name: "NSPasteboard", Platform: "macos", Kind: "class", Summary: "The clipboard"},
	{Name: "NSScreen", Platform: "macos", Kind: "class", Summary: "Display device attributes"},
	{Name: "NSWindowDelegate", Platform: "macos", Kind: "protocol", Summary: "Window lifecycle notifications"},
	{Name: "NSVisualEffectView", Platform: "macos", Kind: "class", Summary: "Translucent background material"},

	// UIKit
	{Name: "UIWindow", Platform: "ios", Kind: "class", Summary: "The backdrop of an app's UI"},
	{Name: "UIViewController", Platform: "ios", Kind: "class", Summary: "Manages a view hierarchy"},
	{Name: "UIView", Platform: "ios", Kind: "class", Summary: "The base iOS drawing region"},
	{Name: "UITextField", Platform: "ios", Kind: "class", Summary: "Single-line editable text"},
	{Name: "UITableView", Platform: "ios", Kind: "class", Summary: "Scrolling single-column rows"},
	{Name: "UIPasteboard", Platform: "ios", Kind: "class", Summary: "The iOS clipboard"},
	{Name: "UIApplication", Platform: "ios", Kind: "class", Summary: "The centralized point of control for an iOS app"},
	{Name: "UIScreen", Platform: "ios", Kind: "class", Summary: "The device screen"},
	{Name: "UITableViewDataSource", Platform: "ios", Kind: "protocol", Summary: "Provides rows to a table view"},

	// Foundation
	{Name: "NotificationCenter", Platform: "all", Kind: "class", Summary: "Broadcast and observe in-process notifications"},
	{Name: "UserDefaults", Platform: "all", Kind: "class", Summary: "Key-value persistence for preferences"},
	{Name: "FileManager", Platform: "all", Kind: "class", Summary: "Filesystem operations"},
	{Name: "URLSession", Platform: "all", Kind: "class", Summary: "HTTP and URL loading"},
	{Name: "JSONEncoder", Platform: "all", Kind: "class", Summary: "Encodes values as JSON"},
	{Name: "JSONDecoder", Platform: "all", Kind: "class", Summary: "Decodes values from JSON"},
	{Name: "DateFormatter", Platform: "all", Kind: "class", Summary: "Converts dates to and from strings"},
	{Name: "RunLoop", Platform: "all", Kind: "class", Summary: "Event processing loop"},
	{Name: "ProcessInfo", Platform: "all", Kind: "class", Summary: "Information about the current process"},
	{Name: "Codable", Platform: "all", Kind: "protocol", Summary: "Encodable plus decodable"},
	{Name: "ObservableObject", Platform: "all", Kind: "protocol", Summary: "Publishes changes for observation"},

	// SwiftUI
	{Name: "View", Platform: "all", Kind: "protocol", Summary: "A piece of declarative UI"},
	{Name: "State", Platform: "all", Kind: "property", Summary: "View-local mutable state wrapper"},
	{Name: "Binding", Platform: "all", Kind: "property", Summary: "Two-way connection to state owned elsewhere"},
	{Name: "EnvironmentObject", Platform: "all", Kind: "property", Summary: "Shared model injected through the environment"},
	{Name: "Text", Platform: "all", Kind: "class", Summary: "Displays one or more lines of read-only text"},
	{Name: "List", Platform: "all", Kind: "class", Summary: "A container presenting rows of data"},
}
