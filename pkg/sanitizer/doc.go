// Package sanitizer cleans HTML before it reaches a page.
//
// Three entry points cover sprout's needs:
//
//   - [Text] strips every tag and is used for frontmatter strings such as
//     titles and descriptions.
//   - [Document] keeps the structure goldmark emits for markdown (headings,
//     tables, code blocks, links, images) along with class attributes, so
//     utility classes written into docs still reach the styling plugin.
//   - [Custom] applies a caller supplied bluemonday policy.
//
// Policies are built once and are safe for concurrent use.
package sanitizer
