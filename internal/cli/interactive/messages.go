package interactive

// ResetBoardMsg clears every cell
type ResetBoardMsg struct{}

// ShowInfoMsg opens the info dialog
type ShowInfoMsg struct{}

// InfoDismissedMsg closes the info dialog
type InfoDismissedMsg struct{}
