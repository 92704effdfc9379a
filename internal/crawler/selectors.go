package crawler

// Search result markup selectors. These mirror the current rendering of the
// maps frontend and are the first place to look when discovery comes back
// empty after a markup change.
const (
	// feedSelector matches the scrollable results list.
	feedSelector = `div[role="feed"]`

	// placeLinkSelector matches anchors pointing at individual listings
	// inside the feed.
	placeLinkSelector = `a[href*="/maps/place/"]`

	// endOfListSelector renders once the feed has no more results to load.
	endOfListSelector = `span.HlvSq`

	// detailNameSelector is the listing heading in the detail pane; its
	// visibility signals the pane has rendered.
	detailNameSelector = "h1.DUwDvf"

	// detailPaneSelector is the detail pane container.
	detailPaneSelector = `div[role="main"]`
)
