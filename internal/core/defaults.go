package core

// defaultEntryModule is the source module synthesized when a test stages no
// entry module of its own. It carries two fixtures for exercising the
// external fuzz driver: pass_fuzzing accepts any input without effect, and
// fail_fuzzing panics for inputs of exactly 7 bytes so a crash is always
// findable.
const defaultEntryModule = `pub fn pass_fuzzing(data: &[u8]) {
    let _ = data;
}

pub fn fail_fuzzing(data: &[u8]) {
    if data.len() == 7 {
        panic!("I'm afraid of number 7");
    }
}
`
