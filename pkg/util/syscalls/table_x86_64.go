package syscalls

// X86_64Entries is the x86-64 syscall table as listed in the kernel's
// arch/x86/entry/syscalls/syscall_64.tbl, including the x32 range.
var X86_64Entries = []Entry{
	{0, ABICommon, "read"},
	{1, ABICommon, "write"},
	{2, ABICommon, "open"},
	{3, ABICommon, "close"},
	{4, ABICommon, "stat"},
	{5, ABICommon, "fstat"},
	{6, ABICommon, "lstat"},
	{7, ABICommon, "poll"},
	{8, ABICommon, "lseek"},
	{9, ABICommon, "mmap"},
	{10, ABICommon, "mprotect"},
	{11, ABICommon, "munmap"},
	{12, ABICommon, "brk"},
	{13, ABI64, "rt_sigaction"},
	{14, ABICommon, "rt_sigprocmask"},
	{15, ABI64, "rt_sigreturn"},
	{16, ABI64, "ioctl"},
	{17, ABICommon, "pread64"},
	{18, ABICommon, "pwrite64"},
	{19, ABI64, "readv"},
	{20, ABI64, "writev"},
	{21, ABICommon, "access"},
	{22, ABICommon, "pipe"},
	{23, ABICommon, "select"},
	{24, ABICommon, "sched_yield"},
	{25, ABICommon, "mremap"},
	{26, ABICommon, "msync"},
	{27, ABICommon, "mincore"},
	{28, ABICommon, "madvise"},
	{29, ABICommon, "shmget"},
	{30, ABICommon, "shmat"},
	{31, ABICommon, "shmctl"},
	{32, ABICommon, "dup"},
	{33, ABICommon, "dup2"},
	{34, ABICommon, "pause"},
	{35, ABICommon, "nanosleep"},
	{36, ABICommon, "getitimer"},
	{37, ABICommon, "alarm"},
	{38, ABICommon, "setitimer"},
	{39, ABICommon, "getpid"},
	{40, ABICommon, "sendfile"},
	{41, ABICommon, "socket"},
	{42, ABICommon, "connect"},
	{43, ABICommon, "accept"},
	{44, ABICommon, "sendto"},
	{45, ABI64, "recvfrom"},
	{46, ABI64, "sendmsg"},
	{47, ABI64, "recvmsg"},
	{48, ABICommon, "shutdown"},
	{49, ABICommon, "bind"},
	{50, ABICommon, "listen"},
	{51, ABICommon, "getsockname"},
	{52, ABICommon, "getpeername"},
	{53, ABICommon, "socketpair"},
	{54, ABI64, "setsockopt"},
	{55, ABI64, "getsockopt"},
	{56, ABICommon, "clone"},
	{57, ABICommon, "fork"},
	{58, ABICommon, "vfork"},
	{59, ABI64, "execve"},
	{60, ABICommon, "exit"},
	{61, ABICommon, "wait4"},
	{62, ABICommon, "kill"},
	{63, ABICommon, "uname"},
	{64, ABICommon, "semget"},
	{65, ABICommon, "semop"},
	{66, ABICommon, "semctl"},
	{67, ABICommon, "shmdt"},
	{68, ABICommon, "msgget"},
	{69, ABICommon, "msgsnd"},
	{70, ABICommon, "msgrcv"},
	{71, ABICommon, "msgctl"},
	{72, ABICommon, "fcntl"},
	{73, ABICommon, "flock"},
	{74, ABICommon, "fsync"},
	{75, ABICommon, "fdatasync"},
	{76, ABICommon, "truncate"},
	{77, ABICommon, "ftruncate"},
	{78, ABICommon, "getdents"},
	{79, ABICommon, "getcwd"},
	{80, ABICommon, "chdir"},
	{81, ABICommon, "fchdir"},
	{82, ABICommon, "rename"},
	{83, ABICommon, "mkdir"},
	{84, ABICommon, "rmdir"},
	{85, ABICommon, "creat"},
	{86, ABICommon, "link"},
	{87, ABICommon, "unlink"},
	{88, ABICommon, "symlink"},
	{89, ABICommon, "readlink"},
	{90, ABICommon, "chmod"},
	{91, ABICommon, "fchmod"},
	{92, ABICommon, "chown"},
	{93, ABICommon, "fchown"},
	{94, ABICommon, "lchown"},
	{95, ABICommon, "umask"},
	{96, ABICommon, "gettimeofday"},
	{97, ABICommon, "getrlimit"},
	{98, ABICommon, "getrusage"},
	{99, ABICommon, "sysinfo"},
	{100, ABICommon, "times"},
	{101, ABI64, "ptrace"},
	{102, ABICommon, "getuid"},
	{103, ABICommon, "syslog"},
	{104, ABICommon, "getgid"},
	{105, ABICommon, "setuid"},
	{106, ABICommon, "setgid"},
	{107, ABICommon, "geteuid"},
	{108, ABICommon, "getegid"},
	{109, ABICommon, "setpgid"},
	{110, ABICommon, "getppid"},
	{111, ABICommon, "getpgrp"},
	{112, ABICommon, "setsid"},
	{113, ABICommon, "setreuid"},
	{114, ABICommon, "setregid"},
	{115, ABICommon, "getgroups"},
	{116, ABICommon, "setgroups"},
	{117, ABICommon, "setresuid"},
	{118, ABICommon, "getresuid"},
	{119, ABICommon, "setresgid"},
	{120, ABICommon, "getresgid"},
	{121, ABICommon, "getpgid"},
	{122, ABICommon, "setfsuid"},
	{123, ABICommon, "setfsgid"},
	{124, ABICommon, "getsid"},
	{125, ABICommon, "capget"},
	{126, ABICommon, "capset"},
	{127, ABI64, "rt_sigpending"},
	{128, ABI64, "rt_sigtimedwait"},
	{129, ABI64, "rt_sigqueueinfo"},
	{130, ABICommon, "rt_sigsuspend"},
	{131, ABI64, "sigaltstack"},
	{132, ABICommon, "utime"},
	{133, ABICommon, "mknod"},
	{134, ABI64, "uselib"},
	{135, ABICommon, "personality"},
	{136, ABICommon, "ustat"},
	{137, ABICommon, "statfs"},
	{138, ABICommon, "fstatfs"},
	{139, ABICommon, "sysfs"},
	{140, ABICommon, "getpriority"},
	{141, ABICommon, "setpriority"},
	{142, ABICommon, "sched_setparam"},
	{143, ABICommon, "sched_getparam"},
	{144, ABICommon, "sched_setscheduler"},
	{145, ABICommon, "sched_getscheduler"},
	{146, ABICommon, "sched_get_priority_max"},
	{147, ABICommon, "sched_get_priority_min"},
	{148, ABICommon, "sched_rr_get_interval"},
	{149, ABICommon, "mlock"},
	{150, ABICommon, "munlock"},
	{151, ABICommon, "mlockall"},
	{152, ABICommon, "munlockall"},
	{153, ABICommon, "vhangup"},
	{154, ABICommon, "modify_ldt"},
	{155, ABICommon, "pivot_root"},
	{156, ABI64, "_sysctl"},
	{157, ABICommon, "prctl"},
	{158, ABICommon, "arch_prctl"},
	{159, ABICommon, "adjtimex"},
	{160, ABICommon, "setrlimit"},
	{161, ABICommon, "chroot"},
	{162, ABICommon, "sync"},
	{163, ABICommon, "acct"},
	{164, ABICommon, "settimeofday"},
	{165, ABICommon, "mount"},
	{166, ABICommon, "umount2"},
	{167, ABICommon, "swapon"},
	{168, ABICommon, "swapoff"},
	{169, ABICommon, "reboot"},
	{170, ABICommon, "sethostname"},
	{171, ABICommon, "setdomainname"},
	{172, ABICommon, "iopl"},
	{173, ABICommon, "ioperm"},
	{174, ABI64, "create_module"},
	{175, ABICommon, "init_module"},
	{176, ABICommon, "delete_module"},
	{177, ABI64, "get_kernel_syms"},
	{178, ABI64, "query_module"},
	{179, ABICommon, "quotactl"},
	{180, ABI64, "nfsservctl"},
	{181, ABICommon, "getpmsg"},
	{182, ABICommon, "putpmsg"},
	{183, ABICommon, "afs_syscall"},
	{184, ABICommon, "tuxcall"},
	{185, ABICommon, "security"},
	{186, ABICommon, "gettid"},
	{187, ABICommon, "readahead"},
	{188, ABICommon, "setxattr"},
	{189, ABICommon, "lsetxattr"},
	{190, ABICommon, "fsetxattr"},
	{191, ABICommon, "getxattr"},
	{192, ABICommon, "lgetxattr"},
	{193, ABICommon, "fgetxattr"},
	{194, ABICommon, "listxattr"},
	{195, ABICommon, "llistxattr"},
	{196, ABICommon, "flistxattr"},
	{197, ABICommon, "removexattr"},
	{198, ABICommon, "lremovexattr"},
	{199, ABICommon, "fremovexattr"},
	{200, ABICommon, "tkill"},
	{201, ABICommon, "time"},
	{202, ABICommon, "futex"},
	{203, ABICommon, "sched_setaffinity"},
	{204, ABICommon, "sched_getaffinity"},
	{205, ABI64, "set_thread_area"},
	{206, ABI64, "io_setup"},
	{207, ABICommon, "io_destroy"},
	{208, ABICommon, "io_getevents"},
	{209, ABI64, "io_submit"},
	{210, ABICommon, "io_cancel"},
	{211, ABI64, "get_thread_area"},
	{212, ABICommon, "lookup_dcookie"},
	{213, ABICommon, "epoll_create"},
	{214, ABI64, "epoll_ctl_old"},
	{215, ABI64, "epoll_wait_old"},
	{216, ABICommon, "remap_file_pages"},
	{217, ABICommon, "getdents64"},
	{218, ABICommon, "set_tid_address"},
	{219, ABICommon, "restart_syscall"},
	{220, ABICommon, "semtimedop"},
	{221, ABICommon, "fadvise64"},
	{222, ABI64, "timer_create"},
	{223, ABICommon, "timer_settime"},
	{224, ABICommon, "timer_gettime"},
	{225, ABICommon, "timer_getoverrun"},
	{226, ABICommon, "timer_delete"},
	{227, ABICommon, "clock_settime"},
	{228, ABICommon, "clock_gettime"},
	{229, ABICommon, "clock_getres"},
	{230, ABICommon, "clock_nanosleep"},
	{231, ABICommon, "exit_group"},
	{232, ABICommon, "epoll_wait"},
	{233, ABICommon, "epoll_ctl"},
	{234, ABICommon, "tgkill"},
	{235, ABICommon, "utimes"},
	{236, ABI64, "vserver"},
	{237, ABICommon, "mbind"},
	{238, ABICommon, "set_mempolicy"},
	{239, ABICommon, "get_mempolicy"},
	{240, ABICommon, "mq_open"},
	{241, ABICommon, "mq_unlink"},
	{242, ABICommon, "mq_timedsend"},
	{243, ABICommon, "mq_timedreceive"},
	{244, ABI64, "mq_notify"},
	{245, ABICommon, "mq_getsetattr"},
	{246, ABI64, "kexec_load"},
	{247, ABI64, "waitid"},
	{248, ABICommon, "add_key"},
	{249, ABICommon, "request_key"},
	{250, ABICommon, "keyctl"},
	{251, ABICommon, "ioprio_set"},
	{252, ABICommon, "ioprio_get"},
	{253, ABICommon, "inotify_init"},
	{254, ABICommon, "inotify_add_watch"},
	{255, ABICommon, "inotify_rm_watch"},
	{256, ABICommon, "migrate_pages"},
	{257, ABICommon, "openat"},
	{258, ABICommon, "mkdirat"},
	{259, ABICommon, "mknodat"},
	{260, ABICommon, "fchownat"},
	{261, ABICommon, "futimesat"},
	{262, ABICommon, "newfstatat"},
	{263, ABICommon, "unlinkat"},
	{264, ABICommon, "renameat"},
	{265, ABICommon, "linkat"},
	{266, ABICommon, "symlinkat"},
	{267, ABICommon, "readlinkat"},
	{268, ABICommon, "fchmodat"},
	{269, ABICommon, "faccessat"},
	{270, ABICommon, "pselect6"},
	{271, ABICommon, "ppoll"},
	{272, ABICommon, "unshare"},
	{273, ABI64, "set_robust_list"},
	{274, ABI64, "get_robust_list"},
	{275, ABICommon, "splice"},
	{276, ABICommon, "tee"},
	{277, ABICommon, "sync_file_range"},
	{278, ABI64, "vmsplice"},
	{279, ABI64, "move_pages"},
	{280, ABICommon, "utimensat"},
	{281, ABICommon, "epoll_pwait"},
	{282, ABICommon, "signalfd"},
	{283, ABICommon, "timerfd_create"},
	{284, ABICommon, "eventfd"},
	{285, ABICommon, "fallocate"},
	{286, ABICommon, "timerfd_settime"},
	{287, ABICommon, "timerfd_gettime"},
	{288, ABICommon, "accept4"},
	{289, ABICommon, "signalfd4"},
	{290, ABICommon, "eventfd2"},
	{291, ABICommon, "epoll_create1"},
	{292, ABICommon, "dup3"},
	{293, ABICommon, "pipe2"},
	{294, ABICommon, "inotify_init1"},
	{295, ABI64, "preadv"},
	{296, ABI64, "pwritev"},
	{297, ABI64, "rt_tgsigqueueinfo"},
	{298, ABICommon, "perf_event_open"},
	{299, ABI64, "recvmmsg"},
	{300, ABICommon, "fanotify_init"},
	{301, ABICommon, "fanotify_mark"},
	{302, ABICommon, "prlimit64"},
	{303, ABICommon, "name_to_handle_at"},
	{304, ABICommon, "open_by_handle_at"},
	{305, ABICommon, "clock_adjtime"},
	{306, ABICommon, "syncfs"},
	{307, ABI64, "sendmmsg"},
	{308, ABICommon, "setns"},
	{309, ABICommon, "getcpu"},
	{310, ABI64, "process_vm_readv"},
	{311, ABI64, "process_vm_writev"},
	{312, ABICommon, "kcmp"},
	{313, ABICommon, "finit_module"},
	{314, ABICommon, "sched_setattr"},
	{315, ABICommon, "sched_getattr"},
	{316, ABICommon, "renameat2"},
	{317, ABICommon, "seccomp"},
	{318, ABICommon, "getrandom"},
	{319, ABICommon, "memfd_create"},
	{320, ABICommon, "kexec_file_load"},
	{321, ABICommon, "bpf"},
	{322, ABI64, "execveat"},
	{323, ABICommon, "userfaultfd"},
	{324, ABICommon, "membarrier"},
	{325, ABICommon, "mlock2"},
	{326, ABICommon, "copy_file_range"},
	{327, ABI64, "preadv2"},
	{328, ABI64, "pwritev2"},
	{329, ABICommon, "pkey_mprotect"},
	{330, ABICommon, "pkey_alloc"},
	{331, ABICommon, "pkey_free"},
	{332, ABICommon, "statx"},
	{333, ABICommon, "io_pgetevents"},
	{334, ABICommon, "rseq"},
	{424, ABICommon, "pidfd_send_signal"},
	{425, ABICommon, "io_uring_setup"},
	{426, ABICommon, "io_uring_enter"},
	{427, ABICommon, "io_uring_register"},
	{428, ABICommon, "open_tree"},
	{429, ABICommon, "move_mount"},
	{430, ABICommon, "fsopen"},
	{431, ABICommon, "fsconfig"},
	{432, ABICommon, "fsmount"},
	{433, ABICommon, "fspick"},
	{434, ABICommon, "pidfd_open"},
	{435, ABICommon, "clone3"},
	{437, ABICommon, "openat2"},
	{438, ABICommon, "pidfd_getfd"},
	{439, ABICommon, "faccessat2"},
	{440, ABICommon, "process_madvise"},
	{441, ABICommon, "epoll_pwait2"},
	{442, ABICommon, "mount_setattr"},
	{443, ABICommon, "quotactl_fd"},
	{444, ABICommon, "landlock_create_ruleset"},
	{445, ABICommon, "landlock_add_rule"},
	{446, ABICommon, "landlock_restrict_self"},
	{447, ABICommon, "memfd_secret"},
	{448, ABICommon, "process_mrelease"},
	{449, ABICommon, "futex_waitv"},
	{512, ABIX32, "rt_sigaction"},
	{513, ABIX32, "rt_sigreturn"},
	{514, ABIX32, "ioctl"},
	{515, ABIX32, "readv"},
	{516, ABIX32, "writev"},
	{517, ABIX32, "recvfrom"},
	{518, ABIX32, "sendmsg"},
	{519, ABIX32, "recvmsg"},
	{520, ABIX32, "execve"},
	{521, ABIX32, "ptrace"},
	{522, ABIX32, "rt_sigpending"},
	{523, ABIX32, "rt_sigtimedwait"},
	{524, ABIX32, "rt_sigqueueinfo"},
	{525, ABIX32, "sigaltstack"},
	{526, ABIX32, "timer_create"},
	{527, ABIX32, "mq_notify"},
	{528, ABIX32, "kexec_load"},
	{529, ABIX32, "waitid"},
	{530, ABIX32, "set_robust_list"},
	{531, ABIX32, "get_robust_list"},
	{532, ABIX32, "vmsplice"},
	{533, ABIX32, "move_pages"},
	{534, ABIX32, "preadv"},
	{535, ABIX32, "pwritev"},
	{536, ABIX32, "rt_tgsigqueueinfo"},
	{537, ABIX32, "recvmmsg"},
	{538, ABIX32, "sendmmsg"},
	{539, ABIX32, "process_vm_readv"},
	{540, ABIX32, "process_vm_writev"},
	{541, ABIX32, "setsockopt"},
	{542, ABIX32, "getsockopt"},
	{543, ABIX32, "io_setup"},
	{544, ABIX32, "io_submit"},
	{545, ABIX32, "execveat"},
	{546, ABIX32, "preadv2"},
	{547, ABIX32, "pwritev2"},
}

// x86_64Slots matches the length of the kernel-generated table, one past
// the highest x32 number.
const x86_64Slots = 548

// NewX86_64 builds the compiled-in x86-64 table.
func NewX86_64() *Table {
	return MustBuild("x86_64", x86_64Slots, X86_64Entries)
}
