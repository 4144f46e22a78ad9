package internal

import (
	"regexp"
	"sort"
	"strings"
)

// TagPrefix marks a word in a bookmark title as a tag
const TagPrefix = "@"

var (
	// A tag starts the title or follows whitespace. \p{Zs} covers the
	// ideographic space that browsers keep in titles.
	boundaryTagRe = regexp.MustCompile(`(?:^|[\s\p{Zs}])(@[^\s\p{Zs}]+)`)
	anywhereTagRe = regexp.MustCompile(`@[^\s\p{Zs}]+`)
	whitespaceRe  = regexp.MustCompile(`[\s\p{Zs}]+`)
)

// ExtractTags returns the tags in title in order of appearance.
// Only words starting with "@" count, so "user@example.com" is not a tag.
// Duplicates are kept.
func ExtractTags(title string) []string {
	tags := []string{}
	for _, m := range boundaryTagRe.FindAllStringSubmatch(title, -1) {
		tags = append(tags, m[1])
	}
	return tags
}

// ExtractTagsAnywhere is ExtractTags without the word boundary rule:
// "user@example.com" yields "@example.com".
func ExtractTagsAnywhere(title string) []string {
	tags := anywhereTagRe.FindAllString(title, -1)
	if tags == nil {
		return []string{}
	}
	return tags
}

// RemoveTagPrefix strips one leading "@"
func RemoveTagPrefix(tag string) string {
	return strings.TrimPrefix(tag, TagPrefix)
}

// AddTagPrefix makes sure text starts with "@"
func AddTagPrefix(text string) string {
	if strings.HasPrefix(text, TagPrefix) {
		return text
	}
	return TagPrefix + text
}

// MergeTags returns every distinct tag of existing and incoming once,
// in first-seen order.
func MergeTags(existing, incoming []string) []string {
	seen := make(map[string]bool, len(existing)+len(incoming))
	merged := make([]string, 0, len(existing)+len(incoming))
	for _, list := range [][]string{existing, incoming} {
		for _, tag := range list {
			if seen[tag] {
				continue
			}
			seen[tag] = true
			merged = append(merged, tag)
		}
	}
	return merged
}

// RemoveTagFromTitle drops the first literal occurrence of tag and tidies
// the whitespace left behind.
func RemoveTagFromTitle(title, tag string) string {
	if tag != "" {
		title = strings.Replace(title, tag, "", 1)
	}
	return collapseSpaces(title)
}

// removeTagToken drops the first whole-word occurrence of tag, so removing
// "@go" leaves "@golang" alone
func removeTagToken(title, tag string) string {
	for _, loc := range boundaryTagRe.FindAllStringSubmatchIndex(title, -1) {
		if title[loc[2]:loc[3]] == tag {
			return collapseSpaces(title[:loc[2]] + " " + title[loc[3]:])
		}
	}
	return collapseSpaces(title)
}

// AddTagToTitle appends tag, prefixed, to title
func AddTagToTitle(title, tag string) string {
	return strings.TrimSpace(title + " " + AddTagPrefix(tag))
}

// CreateDisplayTitle hides every tag in title
func CreateDisplayTitle(title string) string {
	var b strings.Builder
	last := 0
	for _, loc := range boundaryTagRe.FindAllStringSubmatchIndex(title, -1) {
		b.WriteString(title[last:loc[2]])
		b.WriteByte(' ')
		last = loc[3]
	}
	b.WriteString(title[last:])
	return collapseSpaces(b.String())
}

func collapseSpaces(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// TagCount is the number of titles carrying a tag
type TagCount struct {
	Tag   string `json:"tag" yaml:"tag"`
	Count int    `json:"count" yaml:"count"`
}

// CountTags counts how many titles carry each tag. A tag repeated inside one
// title counts once. Sorted by count, then tag.
func CountTags(titles []string) []TagCount {
	counts := make(map[string]int)
	for _, title := range titles {
		for _, tag := range MergeTags(ExtractTags(title), nil) {
			counts[tag]++
		}
	}

	result := make([]TagCount, 0, len(counts))
	for tag, n := range counts {
		result = append(result, TagCount{Tag: tag, Count: n})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Tag < result[j].Tag
	})
	return result
}
