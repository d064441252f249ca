// Package filesystem implements types.FS on top of afero. NewOS wraps the
// real filesystem and NewAferoFS any other afero.Fs, usually the in-memory
// one in tests. WriteFileAtomic is the write path for every file alx owns.
package filesystem
