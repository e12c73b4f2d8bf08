/*
Package unsorted provides an unsorted variant of reading the names of
directory entries, for those many situations where it really doesn't matter
whether directory entries are sorted, or not. So why bother to sort them at
all?
*/
package unsorted
