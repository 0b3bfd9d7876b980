// Package scaffold renders template files into a generated NetBeans project.
// It replaces #[identifier]# placeholder tokens in every text file under the
// output root, and it embeds the built-in Ant project template and logo used
// when no template directory is given.
package scaffold
