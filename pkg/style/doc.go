// Package style is an atomic CSS plugin for sprout pages.
//
// After a page body renders, the plugin collects every class attribute from
// the HTML and generates CSS only for the utility classes it recognises. The
// resulting stylesheet is injected into the document head by the layout, so
// pages need no build step and no stylesheet files:
//
//	<div class="flex items-center gap-4 p-6 md:p-10 bg-slate-50">
//	  <a class="text-blue-600 hover:underline" href="/docs">Docs</a>
//	</div>
//
// produces
//
//	.bg-slate-50{background-color:#f8fafc}
//	.flex{display:flex}
//	.gap-4{gap:1rem}
//	.hover\:underline:hover{text-decoration-line:underline}
//	...
//	@media (min-width:768px){.md\:p-10{padding:2.5rem}}
//
// # Vocabulary
//
// Spacing (p, px, py, pt, pr, pb, pl, m and its axes, gap, negative margins),
// sizing (w, h, min-h, max-w, fractions), display and flexbox, grid columns,
// typography, colours from the theme palette, borders, radius, shadows,
// opacity and position. Unknown classes are ignored, so the plugin coexists
// with hand written stylesheets.
//
// # Variants
//
// A class may be prefixed with state variants (hover:, focus:, active:,
// disabled:, first:, last:) and at most one breakpoint (sm:, md:, lg:, xl:,
// 2xl:), in any order: "md:hover:bg-blue-700". Breakpoints are min-width
// media queries emitted after all base rules, smallest first.
//
// # Caching
//
// Stylesheets are pure functions of the class set, so they are cached by a
// hash of the sorted classes. Pages sharing markup share one generation.
// The default cache is an in-process LRU; pass a cache.Redis through
// [WithCache] to share sheets between instances.
package style
