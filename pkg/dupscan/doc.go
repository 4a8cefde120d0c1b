/*
Package dupscan reports keys that repeat within a stream of text lines.

Each line carries a key between two literal markers. The first time a key is
seen it is reported plain; every later occurrence is reported as a repeat and
counted. The canonical input is a pagemap dump, where the key is a page frame
number and a repeat means two virtual pages share one physical frame.

# Quick Start

Scan standard input with the pagemap markers and print the result:

	res, err := dupscan.Run(os.Stdin, os.Stdout, dupscan.DefaultOptions())
	if err != nil {
	    log.Fatal(err)
	}

For input

	0x7f0000000000: pfn 3b4bf1 soft-dirty 1
	0x7f0000001000: pfn 3dd31e soft-dirty 1
	0x7f0000002000: pfn 3b4bf1 soft-dirty 1

Run writes

	3b4bf1
	3dd31e
	3b4bf1 match!
	1 matches

# Sentinel Keys

Lines whose key equals Options.Sentinel ("0" by default, pagemap's value for
a page that is not present) are skipped: they are neither reported nor
remembered.

# Malformed Lines

A line missing the start marker, or the end marker after it, is skipped and
counted in Result.Malformed. Options.OnMalformed observes each one. With
Options.Strict set, the first malformed line aborts the scan with a
*LineError instead.

# Incremental Use

A Scanner keeps its state across calls, so several inputs can be scanned as
one stream:

	sc, _ := dupscan.New(dupscan.DefaultOptions())
	for _, src := range sources {
	    if _, err := sc.Scan(src.All(), rep.Event); err != nil {
	        return err
	    }
	}
	return rep.Summary(sc.Result())

A Scanner is not safe for concurrent use.
*/
package dupscan
