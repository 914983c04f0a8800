package extractor

import "strings"

// parseWorkPiped handles the "Role | Company" layout: every pipe-delimited
// line opens an entry, a six-line lookahead window picks up location, dates,
// and an optional lead-in summary, then bullet collection takes over.
func parseWorkPiped(lines []string) []WorkEntry {
	var work []WorkEntry
	i := 0
	for i < len(lines) {
		l := lines[i]
		if !strings.Contains(l, "|") {
			i++
			continue
		}

		parts := strings.SplitN(l, "|", 2)
		role := strings.TrimSpace(parts[0])
		company := strings.TrimSpace(parts[1])

		var location, summary, start, end string
		j := i + 1
		scanLimit := j + 6
		if scanLimit > len(lines) {
			scanLimit = len(lines)
		}
		for j < scanLimit {
			s := strings.TrimSpace(lines[j])
			if s == "" {
				j++
				continue
			}
			if location == "" && cityStateTrailerRE.MatchString(s) {
				location = s
				j++
				continue
			}
			if dateLineRE.MatchString(s) {
				start, end, summary = splitDates(s, summary)
				j++
				break
			}
			if summary == "" && !startsWithMarker(s) {
				summary = s
				j++
				continue
			}
			j++
		}

		bullets, k := collectBullets(lines, j)
		if len(bullets) == 0 {
			bullets, k = fallbackBullets(lines, j)
		}
		if summary != "" {
			bullets = append([]string{summary}, bullets...)
		}

		entry := WorkEntry{
			Company:    company,
			Position:   role,
			Start:      start,
			End:        end,
			Highlights: capHighlights(bullets),
		}
		if location != "" {
			entry.Location = strptr(location)
		}
		work = append(work, entry)

		if k > i {
			i = k
		} else {
			i++
		}
	}
	return work
}

// splitDates isolates a date range from a line. Preference order: strict
// "Month YYYY - Month YYYY|Present" range, then first/last year plus any
// month tokens, then the whole line as a start date. Text preceding the
// dates becomes the summary when none was captured yet.
func splitDates(s, summary string) (start, end, outSummary string) {
	outSummary = summary
	if m := dateRangeRE.FindStringSubmatchIndex(s); m != nil {
		start = s[m[2]:m[3]]
		end = s[m[4]:m[5]]
		prefix := strings.TrimSpace(s[:m[0]])
		if prefix != "" && !startsWithMarker(prefix) {
			outSummary = prefix
		}
		return start, end, outSummary
	}

	months := monthRE.FindAllString(s, -1)
	years := yearRE.FindAllString(s, -1)
	if len(years) == 0 {
		return strings.TrimSpace(s), "", outSummary
	}

	if len(months) > 0 {
		start = months[0] + " " + years[0]
	} else {
		start = years[0]
	}
	if len(years) > 1 {
		if len(months) > 0 {
			end = months[len(months)-1] + " " + years[len(years)-1]
		} else {
			end = years[len(years)-1]
		}
	}
	if pos := strings.Index(s, years[0]); pos > 0 {
		prefix := strings.TrimSpace(s[:pos])
		if prefix != "" && !startsWithMarker(prefix) {
			outSummary = prefix
		}
	}
	return start, end, outSummary
}

// fallbackBullets consumes up to 12 descriptive lines as implicit bullets
// when regular collection found nothing, stopping at the next pipe-delimited
// header or section header and skipping pure date/location lines.
func fallbackBullets(lines []string, startIdx int) ([]string, int) {
	var bullets []string
	k := startIdx
	for k < len(lines) {
		s := strings.TrimSpace(lines[k])
		if s == "" {
			k++
			if len(bullets) > 0 {
				break
			}
			continue
		}
		if (strings.Contains(s, "|") && !startsWithMarker(s)) || isHeaderLine(s) {
			break
		}
		if isBareMarker(s) {
			k++
			var parts []string
			for k < len(lines) {
				nxt := strings.TrimSpace(lines[k])
				if nxt == "" {
					k++
					if len(parts) > 0 {
						break
					}
					continue
				}
				if startsWithMarker(nxt) {
					break
				}
				parts = append(parts, nxt)
				k++
			}
			if len(parts) > 0 {
				bullets = append(bullets, strings.Join(parts, " "))
			}
			continue
		}
		if dateLineRE.MatchString(s) {
			k++
			continue
		}
		if looseLocationRE.MatchString(s) {
			k++
			continue
		}
		bullets = append(bullets, s)
		k++
		if len(bullets) >= 12 {
			break
		}
	}
	return bullets, k
}

// parseWorkGeneral handles layouts without pipe delimiters: company line
// first (per the isCompanyLine cascade), then optional location, role line
// possibly carrying an inline date range, optional standalone date line,
// then bullets. Partial records are kept; entries are never dropped solely
// for missing structured fields.
func parseWorkGeneral(lines []string) []WorkEntry {
	var work []WorkEntry
	n := len(lines)
	i := 0
	for i < n {
		s := strings.TrimSpace(lines[i])
		if s == "" || isHeaderLine(s) {
			i++
			continue
		}
		if isLocationLine(s) || hasShortDate(s) {
			i++
			continue
		}

		// bulleted lines with no preceding header become a structureless
		// entry; bullets alone are enough to keep a record
		if startsWithMarker(s) {
			bullets, k := collectBullets(lines, i)
			if len(bullets) > 0 {
				work = append(work, WorkEntry{Highlights: capHighlights(bullets)})
			}
			if k > i {
				i = k
			} else {
				i++
			}
			continue
		}

		var company, role, location, start, end string
		if strings.Contains(s, "|") {
			parts := strings.SplitN(s, "|", 2)
			role = strings.TrimSpace(parts[0])
			company = strings.TrimSpace(parts[1])
		}
		if company == "" {
			company = s
		}

		j := i + 1
		if j < n && isLocationLine(strings.TrimSpace(lines[j])) {
			location = strings.TrimSpace(lines[j])
			j++
		}

		if j < n {
			srole := strings.TrimSpace(lines[j])
			if srole != "" && !isHeaderLine(srole) && !isLocationLine(srole) && !startsWithMarker(srole) {
				if m := dateRangeRE.FindStringSubmatchIndex(srole); m != nil {
					role = strings.TrimSpace(srole[:m[0]])
					start = srole[m[2]:m[3]]
					end = srole[m[4]:m[5]]
					j++
				} else if !hasShortDate(srole) {
					role = srole
					j++
				}
			}
		}

		if j < n && start == "" && end == "" {
			sdate := strings.TrimSpace(lines[j])
			if dateLineRE.MatchString(sdate) {
				start, end, _ = splitDates(sdate, "")
				j++
			}
		}

		bullets, k := collectBullets(lines, j)

		if role == "" && j-1 >= 0 {
			prev := strings.TrimSpace(lines[j-1])
			if prev != "" && !startsWithMarker(prev) && !dateLineRE.MatchString(prev) && !isLocationLine(prev) {
				role = prev
			}
		}

		if company != "" || role != "" || len(bullets) > 0 {
			entry := WorkEntry{
				Company:    company,
				Position:   role,
				Start:      start,
				End:        end,
				Highlights: capHighlights(bullets),
			}
			if location != "" {
				entry.Location = strptr(location)
			}
			work = append(work, entry)
			switch {
			case k > i:
				i = k
			case j > i:
				i = j
			default:
				i++
			}
		} else {
			i++
		}
	}
	return work
}
