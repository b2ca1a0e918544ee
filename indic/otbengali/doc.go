/*
Package otbengali provides the Bengali script profile for package indic.

It holds the classification tables for the Bengali block (U+0980..U+09FF),
the ordering rules for post-base marks, the split table for the two-part
vowel signs O and AU, and the segmentation exceptions of the script.
The profile also covers the Assamese letters RA and WA in the same block.
*/
package otbengali
