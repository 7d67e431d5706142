package uistate

// DesktopBreakpoint: a partir desta largura a barra lateral começa aberta
const DesktopBreakpoint = 1024

type Viewport struct {
	Width int `json:"width"`
}

type Layout struct {
	SidebarOpen bool   `json:"sidebar_open"`
	Mode        string `json:"mode"`
}

// InitialLayout deriva o estado inicial do painel da largura informada.
// Largura desconhecida (<= 0) é tratada como desktop.
func InitialLayout(v Viewport) Layout {
	if v.Width <= 0 || v.Width >= DesktopBreakpoint {
		return Layout{SidebarOpen: true, Mode: "desktop"}
	}
	return Layout{SidebarOpen: false, Mode: "mobile"}
}
