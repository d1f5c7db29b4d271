// Package xer decodes the table-oriented export format produced by project
// scheduling tools. An export is a plain-text file of tab-separated lines,
// classified by their first field:
//
//	ERMHDR	19.12	2024-03-15	...     file metadata, skipped
//	%T	TASK                            starts a table named TASK
//	%F	task_id	task_name	status      declares the column headers
//	%R	1000	Excavation	Active      one data row
//	%E                                  end of data
//
// Scanner walks an export front to back and yields one Table at a time
// without buffering the whole file. All values are returned as strings; the
// format carries no type information.
package xer
